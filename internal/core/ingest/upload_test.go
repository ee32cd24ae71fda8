package ingest_test

import (
	"strings"
	"testing"

	"shiporders/internal/core/ingest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const templateTitle = "Order Upload Template"

const templateHeader = "First Name*,Last Name,Address*,Address2,City*,Zip/Postal Code*,Abbreviation*," +
	"First Name*,Last Name,Address*,Address2,City*,Zip/Postal Code*,Abbreviation*," +
	"Lbs,Oz,Length*,Width*,Height*,Phone Num1,Phone Num2,Order No,Item-SKU"

func templateCSV(rows ...string) *strings.Reader {
	lines := append([]string{templateTitle, templateHeader}, rows...)
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func validRow() []string {
	return []string{
		"Alice", "Smith", "123 Main St", "Apt 4", "Springfield", "62704", "IL",
		"Bob", "Jones", "456 Oak Ave", "", "Portland", "97205", "OR",
		"2", "5", "10", "6", "4", "555-0100", "555-0199", "ORD-1", "SKU-1",
	}
}

func csvRow(cells []string) string {
	return strings.Join(cells, ",")
}

func TestPrepare_ValidUpload(t *testing.T) {
	second := validRow()
	second[0], second[1] = "Carol", ""              // sender without last name
	second[14], second[15] = "", ""                 // both weight columns blank
	second[19], second[20], second[22] = "", "", "" // optional phones and sku

	upload := ingest.Prepare(templateCSV(csvRow(validRow()), csvRow(second)))

	require.True(t, upload.IsValid(), "errors: %v", upload.Errors())
	require.Empty(t, upload.Errors())
	require.Len(t, upload.Rows(), 2)

	first := upload.Rows()[0]
	assert.Equal(t, "Alice", first.Sender.FirstName())
	assert.Equal(t, "Smith", first.Sender.LastName())
	assert.Equal(t, "Bob", first.Recipient.FirstName())
	assert.Equal(t, "Alice Smith", first.FromAddress.Name())
	assert.Equal(t, "Bob Jones", first.ToAddress.Name())
	assert.Equal(t, "Springfield", first.FromAddress.City())
	assert.Equal(t, "62704", first.FromAddress.ZipCode())
	assert.Equal(t, "USA", first.FromAddress.Country())
	assert.False(t, first.FromAddress.IsUserCreated())
	assert.Equal(t, 2*16+5, first.Package.WeightOz())
	assert.Equal(t, 10, first.Package.Length())
	assert.Equal(t, "SKU-1", first.Package.ItemSKU())
	assert.Equal(t, "555-0100", first.PhoneNumber)
	assert.Equal(t, "555-0199", first.PhoneNumber2)

	weightless := upload.Rows()[1]
	assert.Equal(t, "Carol", weightless.FromAddress.Name())
	assert.Equal(t, 0, weightless.Package.WeightOz())
	assert.Empty(t, weightless.PhoneNumber)
}

func TestPrepare_UnreadableFile(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a csv", "Template\n\"unterminated\n"},
		{"missing header row", "Template\n"},
		{"ragged data row", "Template\na,b,c\n1,2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upload := ingest.Prepare(strings.NewReader(tt.input))

			assert.False(t, upload.IsValid())
			assert.Empty(t, upload.Rows())
			assert.Equal(t, map[string][]string{
				"general": {"The file could not be read as a CSV."},
			}, upload.Errors())
		})
	}
}

func TestPrepare_StructureGate(t *testing.T) {
	t.Run("too few columns", func(t *testing.T) {
		input := "Template\nWrong,Header,Structure\na,b,c\n"

		upload := ingest.Prepare(strings.NewReader(input))

		assert.Equal(t, map[string][]string{
			"general": {"Invalid Structure: CSV has fewer columns than the required template."},
		}, upload.Errors())
	})

	t.Run("renamed column reports first mismatch only", func(t *testing.T) {
		header := strings.ReplaceAll(templateHeader, "City*", "Town*")
		input := templateTitle + "\n" + header + "\n" + csvRow(validRow()) + "\n"

		upload := ingest.Prepare(strings.NewReader(input))

		assert.Equal(t, map[string][]string{
			"general": {"Invalid Structure: Missing or renamed column 'city'."},
		}, upload.Errors())
	})

	t.Run("structure failure skips row validation", func(t *testing.T) {
		input := "Template\nWrong,Header,Structure\n,,\n"

		upload := ingest.Prepare(strings.NewReader(input))

		assert.Equal(t, []string{"general"}, errorKeys(upload))
	})
}

func TestPrepare_RequiredFieldsGate(t *testing.T) {
	t.Run("missing fields reported per row with index offset", func(t *testing.T) {
		missingCity := validRow()
		missingCity[11] = "  " // to_city, whitespace only

		missingDims := validRow()
		missingDims[16], missingDims[17] = "", "" // length, width

		upload := ingest.Prepare(templateCSV(
			csvRow(validRow()),
			csvRow(missingCity),
			csvRow(missingDims),
		))

		assert.False(t, upload.IsValid())
		assert.Equal(t, map[string][]string{
			"3": {"Missing required fields: to_city"},
			"4": {"Missing required fields: length, width"},
		}, upload.Errors())
		assert.Len(t, upload.Rows(), 1)
	})

	t.Run("first data row reports as index 2", func(t *testing.T) {
		row := validRow()
		row[0] = "" // from_first_name

		upload := ingest.Prepare(templateCSV(csvRow(row)))

		assert.Equal(t, map[string][]string{
			"2": {"Missing required fields: from_first_name"},
		}, upload.Errors())
	})
}

func TestPrepare_BuilderErrors(t *testing.T) {
	t.Run("non-numeric dimension", func(t *testing.T) {
		row := validRow()
		row[16] = "ten" // length

		upload := ingest.Prepare(templateCSV(csvRow(row)))

		require.False(t, upload.IsValid())
		messages := upload.Errors()["2"]
		require.Len(t, messages, 1)
		assert.True(t, strings.HasPrefix(messages[0], "Invalid data - "), "got %q", messages[0])
		assert.Contains(t, messages[0], "length")
	})

	t.Run("non-numeric weight", func(t *testing.T) {
		row := validRow()
		row[15] = "heavy" // oz

		upload := ingest.Prepare(templateCSV(csvRow(row)))

		messages := upload.Errors()["2"]
		require.Len(t, messages, 1)
		assert.True(t, strings.HasPrefix(messages[0], "Invalid data - "), "got %q", messages[0])
	})

	t.Run("builder errors do not hide other rows", func(t *testing.T) {
		bad := validRow()
		bad[18] = "x" // height

		upload := ingest.Prepare(templateCSV(csvRow(bad), csvRow(validRow())))

		assert.False(t, upload.IsValid())
		assert.Len(t, upload.Rows(), 1)
		assert.Equal(t, []string{"2"}, errorKeys(upload))
	})
}

func TestPrepare_RepeatedReadsAreStable(t *testing.T) {
	row := validRow()
	row[11] = "" // to_city

	upload := ingest.Prepare(templateCSV(csvRow(row)))

	first := upload.Errors()
	assert.False(t, upload.IsValid())
	assert.False(t, upload.IsValid())
	assert.Equal(t, first, upload.Errors())

	// Mutating a returned map must not leak back into the upload.
	first["2"] = append(first["2"], "injected")
	assert.Equal(t, []string{"Missing required fields: to_city"}, upload.Errors()["2"])
}

func errorKeys(u *ingest.Upload) []string {
	keys := make([]string, 0)
	for key := range u.Errors() {
		keys = append(keys, key)
	}
	return keys
}
