package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"shiporders/internal/core/domain/model/address"
	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/pack"
	"shiporders/internal/core/domain/model/party"
)

// BuiltRow holds the unsaved entities materialized from one valid data row.
// Entities carry client-generated IDs so the batch committer can wire the
// order references before anything is persisted.
type BuiltRow struct {
	Sender      *party.Party
	Recipient   *party.Party
	FromAddress *address.Address
	ToAddress   *address.Address
	Package     *pack.Package

	PhoneNumber  string
	PhoneNumber2 string
}

// buildRow converts one remapped data row into domain entities. Address
// labels reuse the party display names, package weight combines the pounds
// and ounces columns, and blank optional cells fall back to their zero
// values. Any failure describes the offending value and aborts the row.
func buildRow(row Row) (BuiltRow, error) {
	sender, err := party.NewParty(kernel.NewUUID(),
		field(row, "from_first_name"), field(row, "from_last_name"))
	if err != nil {
		return BuiltRow{}, err
	}
	recipient, err := party.NewParty(kernel.NewUUID(),
		field(row, "to_first_name"), field(row, "to_last_name"))
	if err != nil {
		return BuiltRow{}, err
	}

	fromAddress, err := address.NewAddress(kernel.NewUUID(), sender.DisplayName(),
		field(row, "from_address"), field(row, "from_address_2"),
		field(row, "from_city"), field(row, "from_state"), field(row, "from_zip_code"),
		false)
	if err != nil {
		return BuiltRow{}, err
	}
	toAddress, err := address.NewAddress(kernel.NewUUID(), recipient.DisplayName(),
		field(row, "to_address"), field(row, "to_address_2"),
		field(row, "to_city"), field(row, "to_state"), field(row, "to_zip_code"),
		false)
	if err != nil {
		return BuiltRow{}, err
	}

	length, err := requiredInt(row, "length")
	if err != nil {
		return BuiltRow{}, err
	}
	width, err := requiredInt(row, "width")
	if err != nil {
		return BuiltRow{}, err
	}
	height, err := requiredInt(row, "height")
	if err != nil {
		return BuiltRow{}, err
	}
	lbs, err := optionalInt(row, "weight_lbs")
	if err != nil {
		return BuiltRow{}, err
	}
	oz, err := optionalInt(row, "weight_oz")
	if err != nil {
		return BuiltRow{}, err
	}

	parcel, err := pack.NewPackage(kernel.NewUUID(), length, width, height,
		pack.TotalOunces(lbs, oz), field(row, "item_sku"), false)
	if err != nil {
		return BuiltRow{}, err
	}

	return BuiltRow{
		Sender:       sender,
		Recipient:    recipient,
		FromAddress:  fromAddress,
		ToAddress:    toAddress,
		Package:      parcel,
		PhoneNumber:  field(row, "phone_number"),
		PhoneNumber2: field(row, "phone_number_2"),
	}, nil
}

func field(row Row, name string) string {
	return strings.TrimSpace(row[name])
}

func requiredInt(row Row, name string) (int, error) {
	raw := field(row, name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a whole number", name, raw)
	}
	return n, nil
}

func optionalInt(row Row, name string) (int, error) {
	if field(row, name) == "" {
		return 0, nil
	}
	return requiredInt(row, name)
}
