package httperr

// Response is the body written for errors that escape the handlers, from the
// recovery and error middleware.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}
