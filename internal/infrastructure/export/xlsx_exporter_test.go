package export

import (
	"bytes"
	"testing"
	"time"

	"engenharia_os/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_Export(t *testing.T) {
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	orders := []entities.ServiceOrder{
		{ID: "os-1", Numero: 101, Status: entities.OSStatusEmExecucao, Cliente: "Planta Norte", DataInicioPrevista: &start, HHPlanejado: 40, HHAdicional: 10, ValorOrcamento: 5000, JustificativaEngenharia: "client delay"},
		{ID: "os-2", Numero: 102, Status: entities.OSStatusEmExecucao},
	}

	exp := NewXLSXExporter(0)
	if exp.FileExtension() != "xlsx" || exp.ContentType() == "" {
		t.Fatalf("unexpected metadata %q %q", exp.FileExtension(), exp.ContentType())
	}

	var buf bytes.Buffer
	if err := exp.Export(&buf, orders); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Nº OS" || len(rows[0]) != len(xlsxHeader) {
		t.Fatalf("unexpected header: %v", rows[0])
	}

	first := rows[1]
	if first[0] != "101" || first[1] != "em-execucao" || first[6] != "01/02/2025" {
		t.Fatalf("unexpected first row: %v", first)
	}
	if first[10] != "50" || first[12] != "4750" || first[13] != "client delay" {
		t.Fatalf("unexpected totals: %v", first)
	}
}

func TestXLSXExporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewXLSXExporter(95).Export(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected a workbook even without rows")
	}
}

func TestXLSXExporter_HeaderStyledThroughLastColumn(t *testing.T) {
	var buf bytes.Buffer
	if err := NewXLSXExporter(95).Export(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	last, err := excelize.CoordinatesToCellName(len(xlsxHeader), 1)
	if err != nil {
		t.Fatalf("cell name: %v", err)
	}
	for _, cell := range []string{"A1", last} {
		id, err := f.GetCellStyle(sheetName, cell)
		if err != nil {
			t.Fatalf("style of %s: %v", cell, err)
		}
		style, err := f.GetStyle(id)
		if err != nil {
			t.Fatalf("get style %d: %v", id, err)
		}
		if style.Font == nil || !style.Font.Bold {
			t.Fatalf("header cell %s should be bold", cell)
		}
	}
}
