package response

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02T15:04:05Z"

	MessageSuccess       = "Success"
	MessageUnauthorized  = "Unauthorized"
	MessageInternalError = "Something went wrong"
)
