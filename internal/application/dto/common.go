package dto

// Envelope único de la API:
//   éxito  -> {"status":"success","data":...}
//   fallo  -> {"status":"fail","message":"...","errors":{campo: mensaje}}
//   error  -> {"status":"error","message":"..."}

// DataResponse cuerpo de éxito.
type DataResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// ErrorResponse cuerpo de fallo o error.
type ErrorResponse struct {
	Status  string            `json:"status"` // "fail" (4xx) o "error" (5xx)
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"` // mensajes por campo en validaciones
}

// Success arma el envelope de éxito.
func Success(data interface{}) DataResponse {
	return DataResponse{Status: "success", Data: data}
}

// Fail arma el envelope de fallo (4xx).
func Fail(message string) ErrorResponse {
	return ErrorResponse{Status: "fail", Message: message}
}

// FailFields arma el envelope de fallo con detalle por campo.
func FailFields(message string, fields map[string]string) ErrorResponse {
	return ErrorResponse{Status: "fail", Message: message, Errors: fields}
}

// Error arma el envelope de error interno (5xx).
func Error(message string) ErrorResponse {
	return ErrorResponse{Status: "error", Message: message}
}
