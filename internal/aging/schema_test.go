package aging

import (
	"os"
	"path/filepath"
	"testing"

	"netc/ar-statements/internal/models"
	"netc/ar-statements/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableWithHeaders(headers ...string) *models.RawTable {
	return models.NewRawTable("test.csv", headers, nil)
}

func TestResolveQuickBooksHeaders(t *testing.T) {
	table := tableWithHeaders(
		"Type", "Date", "Num", "P. O. #", "Name", "Terms", "Due Date", "Aging", "Open Balance",
	)

	cols, err := DefaultSchema().Resolve(table)
	require.NoError(t, err)

	assert.Equal(t, "Name", cols.Header(FieldCustomer))
	assert.Equal(t, "Type", cols.Header(FieldDocType))
	assert.Equal(t, "Num", cols.Header(FieldDocNum))
	assert.Equal(t, "P. O. #", cols.Header(FieldPO))
	assert.Equal(t, "Date", cols.Header(FieldInvoiceDate))
	assert.Equal(t, "Due Date", cols.Header(FieldDueDate))
	assert.Equal(t, "Open Balance", cols.Header(FieldOpenBalance))
	assert.Equal(t, "Aging", cols.Header(FieldAging))
	assert.False(t, cols.Has(FieldDaysPastDue))
}

func TestResolveUnderscoreHeaders(t *testing.T) {
	table := tableWithHeaders(
		"Customer_Name", "Txn_Type", "Invoice_Number", "Open_Amount", "Days_Past_Due",
	)

	cols, err := DefaultSchema().Resolve(table)
	require.NoError(t, err)

	assert.Equal(t, "Customer_Name", cols.Header(FieldCustomer))
	assert.Equal(t, "Txn_Type", cols.Header(FieldDocType))
	assert.Equal(t, "Invoice_Number", cols.Header(FieldDocNum))
	assert.Equal(t, "Open_Amount", cols.Header(FieldOpenBalance))
	assert.Equal(t, "Days_Past_Due", cols.Header(FieldDaysPastDue))
}

func TestResolveFirstAliasWins(t *testing.T) {
	// Both "Name" and "Customer" present; the earlier alias wins.
	table := tableWithHeaders("Customer", "Name", "Type", "Open Balance")

	cols, err := DefaultSchema().Resolve(table)
	require.NoError(t, err)
	assert.Equal(t, "Name", cols.Header(FieldCustomer))
}

func TestResolveMissingRequiredColumns(t *testing.T) {
	table := tableWithHeaders("Name", "Date", "Num")

	_, err := DefaultSchema().Resolve(table)
	require.Error(t, err)

	var missing *parsererror.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"type", "open_balance"}, missing.Fields)
	assert.Equal(t, []string{"Name", "Date", "Num"}, missing.Headers)
}

func TestExtendFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"customer:\n  - Client\nopen_balance:\n  - Outstanding\n",
	), 0600))

	schema := DefaultSchema()
	require.NoError(t, schema.ExtendFromYAML(path))

	table := tableWithHeaders("Client", "Type", "Outstanding")
	cols, err := schema.Resolve(table)
	require.NoError(t, err)
	assert.Equal(t, "Client", cols.Header(FieldCustomer))
	assert.Equal(t, "Outstanding", cols.Header(FieldOpenBalance))
}

func TestExtendFromYAMLBuiltinsKeepPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("customer:\n  - Client\n"), 0600))

	schema := DefaultSchema()
	require.NoError(t, schema.ExtendFromYAML(path))

	table := tableWithHeaders("Client", "Name", "Type", "Open Balance")
	cols, err := schema.Resolve(table)
	require.NoError(t, err)
	assert.Equal(t, "Name", cols.Header(FieldCustomer))
}

func TestExtendFromYAMLRejectsUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cstomer:\n  - Client\n"), 0600))

	err := DefaultSchema().ExtendFromYAML(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cstomer")
}

func TestExtendFromYAMLMissingFile(t *testing.T) {
	err := DefaultSchema().ExtendFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var parseErr *parsererror.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
