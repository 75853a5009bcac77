package errorx

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest      Code = 100001
	BadResponse     Code = 100002
	NotFound        Code = 100003
	Internal        Code = 100004
	Unavailable     Code = 100005
	TooManyRequests Code = 100006

	// Mint quantity codes
	BelowMinimum Code = 200001
	AboveMaximum Code = 200002

	// Wallet codes
	WalletNotConnected Code = 300001
	WrongNetwork       Code = 300002
	UserRejected       Code = 300003

	// Chain codes
	ProviderError       Code = 400001
	ConfirmationTimeout Code = 400002
)
