package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	"github.com/vijaya/autospares-api/pkg/apperror"
	"github.com/vijaya/autospares-api/pkg/email"
)

// InvoiceService renders invoice PDFs and builds share payloads. The
// PDF and the payloads are pure functions of the order, customer and
// business settings passed in; nothing is read from storage here.
type InvoiceService struct {
	emailService *email.EmailService
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(emailService *email.EmailService) *InvoiceService {
	return &InvoiceService{emailService: emailService}
}

const invoiceDateLayout = "02/01/2006"

func formatINR(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(2)
}

// taxCell renders a tax amount column; untaxed lines show a dash.
func taxCell(amount decimal.Decimal) string {
	if amount.IsZero() {
		return "-"
	}
	return formatINR(amount)
}

// RenderInvoice produces the invoice PDF for a committed order.
func (s *InvoiceService) RenderInvoice(order *entity.Order, customer *entity.Customer, settings *entity.BusinessSettings) ([]byte, error) {
	if order == nil || customer == nil || settings == nil {
		return nil, apperror.ErrBadRequest
	}

	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	s.addHeader(m, settings)
	s.addBillTo(m, order, customer)
	s.addItemsTable(m, order)
	s.addTotals(m, order)
	s.addFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader renders the centered business block and the INVOICE title
func (s *InvoiceService) addHeader(m core.Maroto, settings *entity.BusinessSettings) {
	m.AddRow(10,
		col.New(12).Add(
			text.New(settings.BusinessName, props.Text{
				Size:  16,
				Style: fontstyle.Bold,
				Align: align.Center,
			}),
		),
	)

	if settings.Address != nil && *settings.Address != "" {
		m.AddRow(5,
			col.New(12).Add(
				text.New(*settings.Address, props.Text{
					Size:  9,
					Align: align.Center,
				}),
			),
		)
	}

	var contact []string
	if settings.ContactPhone != nil && *settings.ContactPhone != "" {
		contact = append(contact, *settings.ContactPhone)
	}
	if settings.ContactEmail != nil && *settings.ContactEmail != "" {
		contact = append(contact, *settings.ContactEmail)
	}
	if len(contact) > 0 {
		m.AddRow(5,
			col.New(12).Add(
				text.New(strings.Join(contact, " | "), props.Text{
					Size:  9,
					Align: align.Center,
				}),
			),
		)
	}

	if settings.GSTIN != nil && *settings.GSTIN != "" {
		m.AddRow(5,
			col.New(12).Add(
				text.New("GSTIN: "+*settings.GSTIN, props.Text{
					Size:  9,
					Align: align.Center,
				}),
			),
		)
	}

	m.AddRow(4, line.NewCol(12))

	m.AddRow(10,
		col.New(12).Add(
			text.New("INVOICE", props.Text{
				Size:  14,
				Style: fontstyle.Bold,
				Align: align.Center,
			}),
		),
	)
}

// addBillTo renders the customer block and the invoice number/date
func (s *InvoiceService) addBillTo(m core.Maroto, order *entity.Order, customer *entity.Customer) {
	left := col.New(6).Add(
		text.New("Bill To:", props.Text{
			Size:  10,
			Style: fontstyle.Bold,
		}),
		text.New(customer.Name, props.Text{
			Size: 9,
			Top:  5,
		}),
		text.New(customer.Code, props.Text{
			Size: 9,
			Top:  9,
		}),
	)

	right := col.New(6).Add(
		text.New("Invoice #: "+order.OrderNumber, props.Text{
			Size:  10,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
		text.New("Date: "+order.CreatedAt.Format(invoiceDateLayout), props.Text{
			Size:  9,
			Top:   5,
			Align: align.Right,
		}),
	)

	m.AddRow(24, left, right)

	if customer.Phone != nil && *customer.Phone != "" {
		m.AddRow(5,
			col.New(12).Add(
				text.New("Phone: "+*customer.Phone, props.Text{Size: 9}),
			),
		)
	}
	if customer.Address != nil && *customer.Address != "" {
		m.AddRow(5,
			col.New(12).Add(
				text.New(*customer.Address, props.Text{Size: 9}),
			),
		)
	}

	m.AddRow(4, line.NewCol(12))
}

// addItemsTable renders the line items with dash cells for untaxed lines
func (s *InvoiceService) addItemsTable(m core.Maroto, order *entity.Order) {
	header := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
	}

	m.AddRow(8,
		col.New(1).Add(text.New("#", header)),
		col.New(4).Add(text.New("Description", header)),
		col.New(1).Add(text.New("Qty", header)),
		col.New(2).Add(text.New("Rate", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		col.New(1).Add(text.New("SGST", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		col.New(1).Add(text.New("CGST", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		col.New(2).Add(text.New("Amount", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
	)

	m.AddRow(2, line.NewCol(12))

	for i, item := range order.Items {
		m.AddRow(7,
			col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), props.Text{Size: 8})),
			col.New(4).Add(text.New(item.PartName, props.Text{Size: 8})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 8})),
			col.New(2).Add(text.New(formatINR(item.Price), props.Text{Size: 8, Align: align.Right})),
			col.New(1).Add(text.New(taxCell(item.SGSTAmount), props.Text{Size: 8, Align: align.Right})),
			col.New(1).Add(text.New(taxCell(item.CGSTAmount), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(formatINR(item.Subtotal), props.Text{Size: 8, Align: align.Right})),
		)
	}

	m.AddRow(3, line.NewCol(12))
}

// addTotals renders the right-aligned summary block
func (s *InvoiceService) addTotals(m core.Maroto, order *entity.Order) {
	m.AddRow(6,
		col.New(7),
		col.New(3).Add(
			text.New("Subtotal:", props.Text{Size: 10, Align: align.Right}),
		),
		col.New(2).Add(
			text.New(formatINR(order.TotalSellingPrice), props.Text{Size: 10, Align: align.Right}),
		),
	)

	totalGST := totalGSTOf(order)
	if totalGST.IsPositive() {
		m.AddRow(6,
			col.New(7),
			col.New(3).Add(
				text.New("Total GST:", props.Text{Size: 10, Align: align.Right}),
			),
			col.New(2).Add(
				text.New(formatINR(totalGST), props.Text{Size: 10, Align: align.Right}),
			),
		)
	}

	m.AddRow(2, col.New(7), line.NewCol(5))
	m.AddRow(8,
		col.New(7),
		col.New(3).Add(
			text.New("Total Amount:", props.Text{
				Size:  11,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
		),
		col.New(2).Add(
			text.New(formatINR(order.TotalAmount), props.Text{
				Size:  11,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
		),
	)
}

func (s *InvoiceService) addFooter(m core.Maroto) {
	m.AddRow(10)
	m.AddRow(8,
		col.New(12).Add(
			text.New("Thank you for your business!", props.Text{
				Size:  10,
				Align: align.Center,
			}),
		),
	)
}

func totalGSTOf(order *entity.Order) decimal.Decimal {
	total := decimal.Zero
	for _, item := range order.Items {
		total = total.Add(item.TotalGST)
	}
	return total
}

// SharePayload is a ready-to-send message with its deep link. The
// caller (or the client app) performs the actual send; no messaging
// transport lives here.
type SharePayload struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// EmailSharePayload carries a composed email and its mailto link
type EmailSharePayload struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Link    string `json:"link"`
}

// WhatsAppShare builds the WhatsApp message and wa.me link for an order.
func (s *InvoiceService) WhatsAppShare(order *entity.Order, customer *entity.Customer, settings *entity.BusinessSettings) SharePayload {
	text := fmt.Sprintf(
		"🧾 *Invoice from %s*\n\nOrder: %s\nCustomer: %s\nAmount: %s\nDate: %s\n\nThank you for your business! 🙏",
		settings.BusinessName,
		order.OrderNumber,
		customer.Name,
		formatINR(order.TotalAmount),
		order.CreatedAt.Format(invoiceDateLayout),
	)

	link := "https://wa.me/"
	if customer.Phone != nil {
		link += digitsOnly(*customer.Phone)
	}
	link += "?text=" + url.QueryEscape(text)

	return SharePayload{Text: text, Link: link}
}

// EmailShare builds the invoice email subject/body and a mailto link.
func (s *InvoiceService) EmailShare(order *entity.Order, customer *entity.Customer, settings *entity.BusinessSettings) EmailSharePayload {
	subject := fmt.Sprintf("Invoice %s from %s", order.OrderNumber, settings.BusinessName)
	body := fmt.Sprintf(
		"Dear %s,\n\nPlease find your invoice details below.\n\nOrder: %s\nAmount: %s\nDate: %s\n\nThank you for your business!\n\n%s",
		customer.Name,
		order.OrderNumber,
		formatINR(order.TotalAmount),
		order.CreatedAt.Format(invoiceDateLayout),
		settings.BusinessName,
	)

	link := "mailto:"
	if customer.Email != nil {
		link += *customer.Email
	}
	link += "?subject=" + url.QueryEscape(subject) + "&body=" + url.QueryEscape(body)

	return EmailSharePayload{Subject: subject, Body: body, Link: link}
}

// SendInvoiceEmail delivers the invoice summary over SMTP. The customer
// must have an email address on file.
func (s *InvoiceService) SendInvoiceEmail(order *entity.Order, customer *entity.Customer, settings *entity.BusinessSettings) error {
	if customer.Email == nil || *customer.Email == "" {
		return apperror.NewBadRequestError("Customer has no email address")
	}

	return s.emailService.SendInvoiceEmail(email.InvoiceEmail{
		To:           *customer.Email,
		BusinessName: settings.BusinessName,
		CustomerName: customer.Name,
		OrderNumber:  order.OrderNumber,
		OrderDate:    order.CreatedAt.Format(invoiceDateLayout),
		TotalAmount:  formatINR(order.TotalAmount),
	})
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
