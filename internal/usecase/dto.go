package usecase

type SendTextInput struct {
	Number  string `json:"number" example:"573001234567"`
	Message string `json:"message" example:"Hola"`
}

type SendImageInput struct {
	Number   string `json:"number" example:"573001234567"`
	ImageURL string `json:"imageUrl" example:"https://example.com/foto.png"`
	Caption  string `json:"caption,omitempty" example:"Mira esto"`
}

type SendFileInput struct {
	Number   string `json:"number" example:"573001234567"`
	Filename string `json:"filename" example:"factura.pdf"`
	Base64   string `json:"base64" example:"JVBERi0xLjQK..."`
}

type DispatchOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Operation describes one of the three dispatch flows and its fixed human strings.
type Operation struct {
	Name    string
	Success string
	Failure string
}

var (
	TextOperation = Operation{
		Name:    "text",
		Success: "Mensaje enviado correctamente",
		Failure: "No se pudo enviar el mensaje",
	}
	ImageOperation = Operation{
		Name:    "image",
		Success: "Imagen enviada correctamente",
		Failure: "No se pudo enviar la imagen",
	}
	FileOperation = Operation{
		Name:    "file",
		Success: "Archivo enviado correctamente",
		Failure: "No se pudo enviar el archivo",
	}
)
