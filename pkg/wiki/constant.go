package wiki

const (
	restPath   = "/w/rest.php/v1"
	actionPath = "/w/api.php"
)
