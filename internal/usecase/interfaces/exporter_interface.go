package interfaces

import (
	"io"

	"engenharia_os/internal/domain/entities"
)

// IServiceOrderExporter renders an OS listing into a downloadable document.
type IServiceOrderExporter interface {
	ContentType() string
	FileExtension() string
	Export(w io.Writer, orders []entities.ServiceOrder) error
}
