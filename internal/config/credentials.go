package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkotov/go-chat-bridge/models"
)

// credentialsFileName is the session state file under the user config
// directory.
const credentialsFileName = "session.json"

func credentialsPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("no user config dir: %w", err)
	}
	return filepath.Join(base, "go-chat-bridge", credentialsFileName), nil
}

// LoadCredentials reads the persisted session state. A missing file is not an
// error: it returns zero credentials so the login screen takes over.
func LoadCredentials() (models.SessionCredentials, error) {
	path, err := credentialsPath()
	if err != nil {
		return models.SessionCredentials{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return models.SessionCredentials{}, nil
	}
	if err != nil {
		return models.SessionCredentials{}, fmt.Errorf("read session state: %w", err)
	}

	var creds models.SessionCredentials
	if err = json.Unmarshal(data, &creds); err != nil {
		return models.SessionCredentials{}, fmt.Errorf("decode session state: %w", err)
	}

	return creds, nil
}

// SaveCredentials persists the session state for the next start. The sync
// engine never calls this directly; it returns updated credentials to the
// presentation layer, which decides when to save.
func SaveCredentials(creds models.SessionCredentials) error {
	path, err := credentialsPath()
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	payload, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}

	if err = os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}

	return nil
}
