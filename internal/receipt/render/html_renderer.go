package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

const receiptA5Template = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Receipt {{.Payment.TransactionNo}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 24px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
    }
    .receipt {
      width: 148mm;
      margin: 0 auto;
    }
    .header {
      display: flex;
      align-items: center;
      gap: 12px;
      border-bottom: 2px solid #111827;
      padding-bottom: 12px;
      margin-bottom: 16px;
    }
    .header img { max-height: 56px; }
    .shop-name { font-size: 18px; font-weight: bold; }
    .shop-meta { font-size: 12px; color: #6b7280; }
    .meta {
      display: flex;
      justify-content: space-between;
      font-size: 13px;
      margin-bottom: 16px;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      font-size: 13px;
    }
    th, td {
      padding: 8px;
      border-bottom: 1px solid #e5e7eb;
      text-align: left;
    }
    td.amount { text-align: right; }
    .total td {
      font-weight: bold;
      border-top: 2px solid #111827;
    }
    .footer {
      margin-top: 20px;
      font-size: 11px;
      color: #6b7280;
      text-align: center;
    }
  </style>
</head>
<body>
  <div class="receipt">
    <div class="header">
      {{if .Shop.LogoURL}}<img src="{{.Shop.LogoURL}}" alt="Shop logo" />{{end}}
      <div>
        <div class="shop-name">{{.Shop.ShopName}}</div>
        <div class="shop-meta">{{.Shop.Address}}</div>
        <div class="shop-meta">{{.Shop.PhoneNo}}{{if .Shop.Email}} | {{.Shop.Email}}{{end}}</div>
      </div>
    </div>

    <div class="meta">
      <div>
        <div>Transaction No: <strong>{{.Payment.TransactionNo}}</strong></div>
        <div>Customer ID: {{.Payment.UserID}}</div>
        {{if .Payment.ReferenceNo}}<div>Reference No: {{.Payment.ReferenceNo}}</div>{{end}}
      </div>
      <div>
        <div>{{formatDate .Payment.Date}}</div>
        <div>Status: {{.Payment.Status}}</div>
      </div>
    </div>

    <table>
      <tr><th>Utility</th><td>{{.Payment.Utility}}</td></tr>
      <tr><th>Account No</th><td>{{.Payment.AccountNo}}</td></tr>
      <tr><th>Account Name</th><td>{{.Payment.AccountName}}</td></tr>
      <tr><th>Phone No</th><td>{{.Payment.PhoneNo}}</td></tr>
      <tr><th>Bill Amount</th><td class="amount">{{formatMoney .Payment.Amount}}</td></tr>
      <tr><th>Service Charge</th><td class="amount">{{formatMoney .Payment.ServiceCharge}}</td></tr>
      <tr class="total"><td>Total</td><td class="amount">{{formatMoney .Payment.TotalDue}}</td></tr>
      {{if .Payment.PaidAmount}}
      <tr><th>Paid Amount</th><td class="amount">{{formatMoney (deref .Payment.PaidAmount)}}</td></tr>
      <tr><th>Balance</th><td class="amount">{{formatMoney (deref .Payment.Balance)}}</td></tr>
      {{end}}
    </table>

    <div class="footer">Thank you for your payment.</div>
  </div>
</body>
</html>
`

const receipt80mmTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Receipt {{.Payment.TransactionNo}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 8px;
      font-family: "Courier New", monospace;
      font-size: 12px;
      color: #000000;
      background: #ffffff;
    }
    .receipt { width: 72mm; margin: 0 auto; }
    .center { text-align: center; }
    .shop-name { font-size: 14px; font-weight: bold; }
    .rule { border-top: 1px dashed #000000; margin: 6px 0; }
    .row {
      display: flex;
      justify-content: space-between;
    }
    .total { font-weight: bold; }
  </style>
</head>
<body>
  <div class="receipt">
    <div class="center">
      <div class="shop-name">{{.Shop.ShopName}}</div>
      <div>{{.Shop.Address}}</div>
      <div>{{.Shop.PhoneNo}}</div>
    </div>
    <div class="rule"></div>
    <div class="row"><span>Txn No</span><span>{{.Payment.TransactionNo}}</span></div>
    <div class="row"><span>Customer</span><span>{{.Payment.UserID}}</span></div>
    <div class="row"><span>Date</span><span>{{formatDate .Payment.Date}}</span></div>
    <div class="row"><span>Status</span><span>{{.Payment.Status}}</span></div>
    {{if .Payment.ReferenceNo}}<div class="row"><span>Ref No</span><span>{{.Payment.ReferenceNo}}</span></div>{{end}}
    <div class="rule"></div>
    <div class="row"><span>Utility</span><span>{{.Payment.Utility}}</span></div>
    <div class="row"><span>Account</span><span>{{.Payment.AccountNo}}</span></div>
    <div class="row"><span>Name</span><span>{{.Payment.AccountName}}</span></div>
    <div class="rule"></div>
    <div class="row"><span>Amount</span><span>{{formatMoney .Payment.Amount}}</span></div>
    <div class="row"><span>Service Charge</span><span>{{formatMoney .Payment.ServiceCharge}}</span></div>
    <div class="row total"><span>Total</span><span>{{formatMoney .Payment.TotalDue}}</span></div>
    {{if .Payment.PaidAmount}}
    <div class="row"><span>Paid</span><span>{{formatMoney (deref .Payment.PaidAmount)}}</span></div>
    <div class="row"><span>Balance</span><span>{{formatMoney (deref .Payment.Balance)}}</span></div>
    {{end}}
    <div class="rule"></div>
    <div class="center">Thank you for your payment.</div>
  </div>
</body>
</html>
`

type HTMLRenderer struct {
	a5      *template.Template
	thermal *template.Template
}

func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"formatMoney": formatMoney,
		"formatDate":  formatDate,
		"deref":       deref,
	}
	return &HTMLRenderer{
		a5:      template.Must(template.New("receipt-a5").Funcs(funcs).Parse(receiptA5Template)),
		thermal: template.Must(template.New("receipt-80mm").Funcs(funcs).Parse(receipt80mmTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(input RenderInput) (string, error) {
	if input.Shop.ShopName == "" {
		input.Shop.ShopName = "Receipt"
	}
	tpl := r.a5
	if input.Size == "80mm" {
		tpl = r.thermal
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("LKR %.2f", amount)
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Local().Format("2006-01-02 15:04")
}

func deref(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
