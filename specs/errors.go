package specs

var (
	ErrEmptyQuery  = NewOpError("parse", "query string must have at least one key=value pair")
	ErrInvalidPair = NewOpError("parse", "malformed key=value pair")
	ErrInvalidChar = NewOpError("parse", "invalid character in query string")
)
