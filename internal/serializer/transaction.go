package serializer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dangerclosesec/sitebook/core/ledger"
	"github.com/dangerclosesec/sitebook/internal/model"
)

// TransactionCSV writes transactions for an accountant: one row per
// transaction, semicolon separated, amounts with two decimals.
type TransactionCSV struct{}

var transactionHeader = []string{"Dátum", "Typ", "Kategória", "Stavba", "Popis", "Suma", "Uhradené"}

var entryTypeLabel = map[ledger.EntryType]string{
	ledger.EntryInvoice: "Príjem",
	ledger.EntryExpense: "Výdavok",
}

func (TransactionCSV) ContentType() string {
	return "text/csv; charset=utf-8"
}

func (TransactionCSV) Encode(input any, w io.Writer) error {
	rows, ok := input.([]model.Transaction)
	if !ok {
		return fmt.Errorf("transaction csv: unexpected input %T", input)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(transactionHeader); err != nil {
		return err
	}
	for _, t := range rows {
		site := ""
		if t.Site != nil {
			site = t.Site.Name
		}
		paid := "nie"
		if t.IsPaid {
			paid = "áno"
		}
		label, ok := entryTypeLabel[t.Type]
		if !ok {
			label = string(t.Type)
		}

		record := []string{
			t.Date.Format("2006-01-02"),
			label,
			t.Category,
			site,
			t.Description,
			t.Amount.StringFixed(2),
			paid,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func init() {
	Register([]model.Transaction{}, FormatCSV, TransactionCSV{})
}
