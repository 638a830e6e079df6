package helper

const (
	// TimeFormatLogger log time format
	TimeFormatLogger = "2006/01/02 15:04:05"

	// V1 api version
	V1 = "/v1"

	// HeaderContentType header const
	HeaderContentType = "Content-Type"
	// HeaderContentDisposition header const
	HeaderContentDisposition = "Content-Disposition"
	// HeaderAPIKey header for group editor credential
	HeaderAPIKey = "X-API-Key"

	// MIMEApplicationJSON content type
	MIMEApplicationJSON = "application/json"
	// MIMETextCalendar content type for ics feed
	MIMETextCalendar = "text/calendar"

	// StatusDraft event status
	StatusDraft = "draft"
	// StatusPublished event status
	StatusPublished = "published"

	// RoleAdmin role from basic auth credential
	RoleAdmin = "admin"
	// RoleEditor role from group api key credential
	RoleEditor = "editor"
)

var (
	// Green color
	Green = []byte{27, 91, 57, 55, 59, 52, 50, 109}
	// White color
	White = []byte{27, 91, 57, 48, 59, 52, 55, 109}
	// Yellow color
	Yellow = []byte{27, 91, 57, 48, 59, 52, 51, 109}
	// Red color
	Red = []byte{27, 91, 57, 55, 59, 52, 49, 109}
	// Blue color
	Blue = []byte{27, 91, 57, 55, 59, 52, 52, 109}
	// Magenta color
	Magenta = []byte{27, 91, 57, 55, 59, 52, 53, 109}
	// Cyan color
	Cyan = []byte{27, 91, 57, 55, 59, 52, 54, 109}
	// Reset color
	Reset = []byte{27, 91, 48, 109}
)
