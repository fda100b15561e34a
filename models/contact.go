package models

// ContactEntry is an ephemeral row in the "new conversation" picker. It is
// never persisted; it exists only between a contacts fetch and the dialog
// being dismissed.
type ContactEntry struct {
	// Label is the human-readable form: "name (address)" when the upstream
	// contact has a display name, otherwise just the address.
	Label string `json:"label"`

	// Address is the routing identity (phone, email, or handle).
	// Entries with an empty address are dropped during projection.
	Address string `json:"address"`
}
