package reporting

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const ExportFilename = "filtered_sales_data.csv"

var exportHeader = []string{
	"ORDERNUMBER", "QUANTITYORDERED", "PRICEEACH", "ORDERLINENUMBER", "SALES",
	"ORDERDATE", "STATUS", "QTR_ID", "MONTH_ID", "YEAR_ID", "PRODUCTLINE",
	"MSRP", "PRODUCTCODE", "CUSTOMERNAME", "PHONE", "ADDRESSLINE1",
	"ADDRESSLINE2", "CITY", "STATE", "POSTALCODE", "COUNTRY", "TERRITORY",
	"CONTACTLASTNAME", "CONTACTFIRSTNAME", "DEALSIZE",
}

// WriteSalesCSV escreve o cabeçalho e uma linha por registro; colunas nulas ficam vazias.
func WriteSalesCSV(w io.Writer, records []domain.SalesRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.OrderNumber, 10),
			strconv.FormatInt(r.QuantityOrdered, 10),
			formatFloat(r.PriceEach),
			strconv.FormatInt(r.OrderLineNumber, 10),
			formatFloat(r.Sales),
			r.OrderDate.Format("2006-01-02 15:04:05"),
			r.Status,
			strconv.FormatInt(r.QtrID, 10),
			strconv.FormatInt(r.MonthID, 10),
			strconv.FormatInt(r.YearID, 10),
			r.ProductLine,
			strconv.FormatInt(r.MSRP, 10),
			r.ProductCode,
			r.CustomerName,
			deref(r.Phone),
			deref(r.AddressLine1),
			deref(r.AddressLine2),
			deref(r.City),
			deref(r.State),
			deref(r.PostalCode),
			r.Country,
			deref(r.Territory),
			deref(r.ContactLastName),
			deref(r.ContactFirstName),
			r.DealSize,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
