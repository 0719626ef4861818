package http

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/negocio-api/internal/application/dto"
	"github.com/tu-usuario/negocio-api/pkg/storage"
)

// Tipos de archivo aceptados para comprobantes e imágenes de producto.
var allowedUploads = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".pdf":  "application/pdf",
}

// UploadHandler guarda archivos subidos en el disco local del servidor.
type UploadHandler struct {
	disk *storage.LocalDisk
}

func NewUploadHandler(disk *storage.LocalDisk) *UploadHandler {
	return &UploadHandler{disk: disk}
}

// Upload recibe un multipart con el campo "file" y lo persiste bajo un
// nombre generado, nunca el nombre original del cliente.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("falta el archivo a subir"))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	wantMIME, ok := allowedUploads[ext]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("tipo de archivo no permitido"))
	}
	if ct := file.Header.Get(fiber.HeaderContentType); ct != "" && ct != wantMIME {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("tipo de archivo no permitido"))
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	name := filepath.Join("uploads", uuid.NewString()+ext)
	if err := h.disk.Put(name, src); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(fiber.Map{"file": name}))
}
