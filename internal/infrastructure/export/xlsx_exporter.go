package export

import (
	"fmt"
	"io"

	"engenharia_os/internal/domain/entities"
	"engenharia_os/internal/domain/planning"
	"engenharia_os/internal/usecase/interfaces"
	"engenharia_os/pkg/format"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Ordens de Serviço"

var xlsxHeader = []string{
	"Nº OS", "Status", "Cliente", "Disciplina", "CCA", "Responsável EM",
	"Início previsto", "Fim previsto", "HH planejado", "HH adicional", "HH total",
	"Orçamento", "Valor estimado", "Justificativa",
}

// XLSXExporter writes an OS listing as a single-sheet workbook.
type XLSXExporter struct {
	hourlyRate float64
}

var _ interfaces.IServiceOrderExporter = (*XLSXExporter)(nil)

func NewXLSXExporter(hourlyRate float64) *XLSXExporter {
	if hourlyRate <= 0 {
		hourlyRate = planning.DefaultHourlyRate
	}
	return &XLSXExporter{hourlyRate: hourlyRate}
}

func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *XLSXExporter) FileExtension() string {
	return "xlsx"
}

func (e *XLSXExporter) Export(w io.Writer, orders []entities.ServiceOrder) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	for col, title := range xlsxHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return err
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(xlsxHeader), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, bold); err != nil {
		return err
	}

	for i, o := range orders {
		row := []any{
			o.Numero,
			string(o.Status),
			o.Cliente,
			o.Disciplina,
			o.CCA,
			o.ResponsavelEM,
			format.Date(o.DataInicioPrevista),
			format.Date(o.DataFimPrevista),
			o.HHPlanejado,
			o.HHAdicional,
			o.HHTotal(),
			format.RoundCurrency(o.ValorOrcamento),
			format.RoundCurrency(planning.EstimateCost(o.HHPlanejado, o.HHAdicional, e.hourlyRate)),
			o.JustificativaEngenharia,
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, start, &row); err != nil {
			return fmt.Errorf("write row for os %s: %w", o.ID, err)
		}
	}

	return f.Write(w)
}
