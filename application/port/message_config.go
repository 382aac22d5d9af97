package port

// ButtonDefaults supplies URL button settings for requests that omit them.
type ButtonDefaults interface {
	DefaultWebviewHeightRatio() string
	DefaultMessengerExtensions() bool
}
