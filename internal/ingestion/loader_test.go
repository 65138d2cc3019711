package ingestion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/testutil"
	"go.uber.org/mock/gomock"
)

const header = "ordernumber, QUANTITYORDERED,PRICEEACH,ORDERLINENUMBER,SALES,ORDERDATE,STATUS,QTR_ID,MONTH_ID,YEAR_ID," +
	"PRODUCTLINE,MSRP,PRODUCTCODE,CUSTOMERNAME,PHONE,ADDRESSLINE1,ADDRESSLINE2,CITY,STATE,POSTALCODE,COUNTRY," +
	"TERRITORY,CONTACTLASTNAME,CONTACTFIRSTNAME,DEALSIZE\n"

const validRows = `10107,30,95.7,2,2871,2/24/2003 0:00,Shipped,1,2,2003,Motorcycles,95,S10_1678,Land of Toys Inc.,2125557818,897 Long Airport Avenue,,NYC,NY,10022,USA,NA,Yu,Kwai,Small
10121,34,81.35,5,2765.9,5/7/2003 0:00,Shipped,2,5,2003,Motorcycles,95,S10_1678,Reims Collectables,26.47.1555,59 rue de l'Abbaye,,Reims,,51100,France,EMEA,Henriot,Paul,Small
`

func TestParseRecords(t *testing.T) {
	csvData := header + validRows +
		"10134,abc,94.74,2,3884.34,7/1/2003 0:00,Shipped,3,7,2003,Motorcycles,95,S10_1678,Lyon Souveniers,,,,Paris,,75508,France,EMEA,Da Cunha,Daniel,Medium\n" +
		"10145,45,83.26,6,3746.7,not a date,Shipped,3,8,2003,Motorcycles,95,S10_1678,Toys4GrownUps.com,,,,Pasadena,CA,90003,USA,NA,Young,Julie,Medium\n"

	records, skipped, err := ParseRecords(strings.NewReader(csvData), "utf-8")
	require.NoError(t, err)

	assert.Equal(t, int64(2), skipped)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, int64(10107), first.OrderNumber)
	assert.Equal(t, 2871.0, first.Sales)
	assert.Equal(t, 2003, first.OrderDate.Year())
	assert.Equal(t, 24, first.OrderDate.Day())
	assert.Equal(t, "USA", first.Country)
	require.NotNil(t, first.Phone)
	assert.Equal(t, "2125557818", *first.Phone)
	assert.Nil(t, first.AddressLine2)

	assert.Equal(t, "59 rue de l'Abbaye", *records[1].AddressLine1)
	assert.Nil(t, records[1].State)
}

func TestParseRecords_Windows1252(t *testing.T) {
	row := "10100,1,10,1,10,1/6/2003 0:00,Shipped,1,1,2003,Vintage Cars,100,S18_1749,Caf\xe9 Mod\xe8le,,,,Nantes,,44000,France,EMEA,L\xe9vy,Ren\xe9,Small\n"

	records, skipped, err := ParseRecords(strings.NewReader(header+row), "cp1252")
	require.NoError(t, err)
	assert.Equal(t, int64(0), skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "Café Modèle", records[0].CustomerName)
	assert.Equal(t, "René", *records[0].ContactFirstName)
}

func TestParseRecords_HeaderErrors(t *testing.T) {
	_, _, err := ParseRecords(strings.NewReader(""), "utf-8")
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, _, err = ParseRecords(strings.NewReader("ORDERNUMBER,SALES\n1,2\n"), "utf-8")
	assert.ErrorIs(t, err, ErrMissingColumns)
	assert.Contains(t, err.Error(), "COUNTRY")

	_, _, err = ParseRecords(strings.NewReader(header), "ebcdic")
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestLoader_Load_ReplacesTable(t *testing.T) {
	conn := testutil.NewSQLiteConnection(t)
	testutil.SeedSales(t, conn, testutil.Sale(1, 2001, 1, "Japan", "Planes", 999))

	path := filepath.Join(t.TempDir(), "sales_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+validRows), 0o600))

	loader := NewLoader(repository.NewSalesWriter(conn))
	result, err := loader.LoadFile(context.Background(), path, Options{Encoding: "utf-8", BatchSize: 1})
	require.NoError(t, err)

	assert.Len(t, result.RunID, 8)
	assert.Equal(t, int64(2), result.Read)
	assert.Equal(t, int64(2), result.Inserted)
	assert.Equal(t, int64(0), result.Skipped)

	repo := repository.NewSalesRepository(conn)
	totals, err := repo.SummarizeByDimension(context.Background(), domain.DimensionCountry, domain.SalesFilter{}, 0)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, "USA", totals[0].Value)
	assert.Equal(t, "France", totals[1].Value)
}

func TestLoader_Load_WriterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mocks.NewMockSalesWriter(ctrl)

	writer.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Len(2), 100).
		Return(int64(0), errors.New("disk full"))

	_, err := NewLoader(writer).Load(context.Background(), strings.NewReader(header+validRows), Options{BatchSize: 100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestLoader_LoadFile_Missing(t *testing.T) {
	_, err := NewLoader(nil).LoadFile(context.Background(), filepath.Join(t.TempDir(), "nada.csv"), Options{})
	assert.Error(t, err)
}
