package store

// AppVersion is the compiled-in schema version. Bumping it invalidates every
// persisted key on the next CheckVersion.
const AppVersion = "1.0.0"

// Persisted key namespace, one key per aggregate.
const (
	KeyEntries         = "moodSync_entries"
	KeyCurrentUser     = "moodSync_currentUser"
	KeyUsers           = "moodSync_users"
	KeyChannels        = "moodSync_channels"
	KeySelectedChannel = "moodSync_selectedChannel"
	KeyVersion         = "moodSync_version"
)

// Namespace lists every key this application owns in the shared store.
func Namespace() []string {
	return []string{
		KeyEntries,
		KeyCurrentUser,
		KeyUsers,
		KeyChannels,
		KeySelectedChannel,
		KeyVersion,
	}
}
