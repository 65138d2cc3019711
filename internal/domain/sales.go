package domain

import "time"

// SalesRecord é uma linha da tabela sales. As chaves JSON mantêm os nomes das
// colunas do CSV de origem.
type SalesRecord struct {
	OrderNumber      int64     `json:"ORDERNUMBER"`
	QuantityOrdered  int64     `json:"QUANTITYORDERED"`
	PriceEach        float64   `json:"PRICEEACH"`
	OrderLineNumber  int64     `json:"ORDERLINENUMBER"`
	Sales            float64   `json:"SALES"`
	OrderDate        time.Time `json:"ORDERDATE"`
	Status           string    `json:"STATUS"`
	QtrID            int64     `json:"QTR_ID"`
	MonthID          int64     `json:"MONTH_ID"`
	YearID           int64     `json:"YEAR_ID"`
	ProductLine      string    `json:"PRODUCTLINE"`
	MSRP             int64     `json:"MSRP"`
	ProductCode      string    `json:"PRODUCTCODE"`
	CustomerName     string    `json:"CUSTOMERNAME"`
	Phone            *string   `json:"PHONE"`
	AddressLine1     *string   `json:"ADDRESSLINE1"`
	AddressLine2     *string   `json:"ADDRESSLINE2"`
	City             *string   `json:"CITY"`
	State            *string   `json:"STATE"`
	PostalCode       *string   `json:"POSTALCODE"`
	Country          string    `json:"COUNTRY"`
	Territory        *string   `json:"TERRITORY"`
	ContactLastName  *string   `json:"CONTACTLASTNAME"`
	ContactFirstName *string   `json:"CONTACTFIRSTNAME"`
	DealSize         string    `json:"DEALSIZE"`
}

// KPI reúne as três métricas escalares do dashboard. Receita e ticket médio são
// nulos quando o conjunto filtrado está vazio.
type KPI struct {
	TotalRevenue  *float64 `json:"total_revenue"`
	TotalOrders   int64    `json:"total_orders"`
	AvgOrderValue *float64 `json:"avg_order_value"`
}
