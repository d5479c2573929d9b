package report

import (
	"io"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"attarshop/domain"
)

// printer groups amounts the way the shop's printed invoices always
// have (15000 -> "15,000").
var printer = message.NewPrinter(language.English)

// Money formats a dinar amount with digit grouping.
func Money(v float64) string {
	return printer.Sprintf("%.0f", v)
}

const invoiceText = `==========================================
{{.ShopName}}
فاتورة مبيعات عطور زيتية
==========================================
اسم الزبون: {{.Order.CustomerName}}
رقم الطلب: {{.Order.ID}}
التاريخ: {{.Order.Date}}
------------------------------------------
{{range .Order.Items}}{{printf "%-24s" .OilName}} {{printf "%6g" .WeightSold}} غ  {{money .LineTotal}} د.ع
{{end}}------------------------------------------
المجموع الصافي: {{money .Order.TotalAmount}} د.ع

شكراً لزيارتكم، نأمل رؤيتكم مرة أخرى
`

var invoiceTmpl = template.Must(template.New("invoice").
	Funcs(template.FuncMap{"money": Money}).
	Parse(invoiceText))

// RenderInvoice writes the printable invoice for one order.
func RenderInvoice(w io.Writer, shopName string, order domain.Order) error {
	return invoiceTmpl.Execute(w, struct {
		ShopName string
		Order    domain.Order
	}{ShopName: shopName, Order: order})
}
