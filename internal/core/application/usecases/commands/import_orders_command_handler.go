package commands

import (
	"bytes"
	"context"
	"errors"

	"shiporders/internal/core/domain/model/address"
	"shiporders/internal/core/domain/model/job"
	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/order"
	"shiporders/internal/core/domain/model/pack"
	"shiporders/internal/core/domain/model/party"
	"shiporders/internal/core/ingest"
	"shiporders/internal/pkg/errs"
)

// ImportResult is the outcome of an import attempt: the import succeeded
// (Errors empty, StorageFailure false), the upload was rejected (Errors
// populated), or persistence failed after a valid upload (StorageFailure
// true, always with a non-nil error from Handle). A missing default provider
// is a storage failure that additionally reports under the general key.
type ImportResult struct {
	JobID          kernel.UUID
	OrdersCreated  int
	Errors         map[string][]string
	StorageFailure bool
}

// IsSuccess reports whether the import committed.
func (r ImportResult) IsSuccess() bool {
	return len(r.Errors) == 0 && !r.StorageFailure
}

// ImportOrdersCommandHandler runs the ingestion pipeline over the uploaded
// file and, when every row is valid, commits the whole batch in a single
// transaction: one job, then the addresses, parties and packages in bulk,
// then the orders referencing them. A failure at any point rolls everything
// back; partial imports never happen.
type ImportOrdersCommandHandler struct {
	uowFactory        ImportUoWFactory
	defaultProviderID kernel.UUID
}

// NewImportOrdersCommandHandler creates a handler for spreadsheet imports.
// Every imported order is assigned the given default shipping provider.
func NewImportOrdersCommandHandler(
	uowFactory ImportUoWFactory, defaultProviderID kernel.UUID,
) ImportOrdersCommandHandler {
	return ImportOrdersCommandHandler{
		uowFactory:        uowFactory,
		defaultProviderID: defaultProviderID,
	}
}

// Handle processes the import command. Validation failures of the upload are
// reported in the result, not as an error; a non-nil error always accompanies
// StorageFailure and means the transaction was rolled back.
func (h *ImportOrdersCommandHandler) Handle(
	ctx context.Context, cmd ImportOrdersCommand,
) (ImportResult, error) {
	if err := cmd.Validate(); err != nil {
		return ImportResult{}, err
	}

	upload := ingest.Prepare(bytes.NewReader(cmd.File()))
	if !upload.IsValid() {
		return ImportResult{Errors: upload.Errors()}, nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ImportResult{StorageFailure: true}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ProviderRepository().Get(ctx, h.defaultProviderID); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ImportResult{
				StorageFailure: true,
				Errors: map[string][]string{
					ingest.GeneralKey: {"Default shipping provider not found"},
				},
			}, err
		}
		return ImportResult{StorageFailure: true}, err
	}

	importJob, err := job.NewJob(kernel.NewUUID())
	if err != nil {
		return ImportResult{StorageFailure: true}, err
	}
	if err = uow.JobRepository().Add(ctx, importJob); err != nil {
		return ImportResult{StorageFailure: true}, err
	}

	// Batch per entity kind, origin set before destination set, so positional
	// correspondence with the rows survives the bulk inserts.
	rows := upload.Rows()
	addresses := make([]*address.Address, 0, len(rows)*2)
	parties := make([]*party.Party, 0, len(rows)*2)
	packages := make([]*pack.Package, 0, len(rows))
	for _, row := range rows {
		addresses = append(addresses, row.FromAddress)
		parties = append(parties, row.Sender)
		packages = append(packages, row.Package)
	}
	for _, row := range rows {
		addresses = append(addresses, row.ToAddress)
		parties = append(parties, row.Recipient)
	}

	if err = uow.AddressRepository().AddAll(ctx, addresses); err != nil {
		return ImportResult{StorageFailure: true}, err
	}
	if err = uow.PartyRepository().AddAll(ctx, parties); err != nil {
		return ImportResult{StorageFailure: true}, err
	}
	if err = uow.PackageRepository().AddAll(ctx, packages); err != nil {
		return ImportResult{StorageFailure: true}, err
	}

	orders := make([]*order.Order, 0, len(rows))
	jobID := importJob.ID()
	providerID := h.defaultProviderID
	for _, row := range rows {
		aggregate, err := order.NewOrder(
			kernel.NewUUID(),
			&jobID,
			row.Sender.ID(),
			row.Recipient.ID(),
			row.FromAddress.ID(),
			row.ToAddress.ID(),
			row.Package.ID(),
			&providerID,
			row.PhoneNumber,
			row.PhoneNumber2,
		)
		if err != nil {
			return ImportResult{StorageFailure: true}, err
		}
		orders = append(orders, aggregate)
	}

	if err = uow.OrderRepository().AddAll(ctx, orders); err != nil {
		return ImportResult{StorageFailure: true}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ImportResult{StorageFailure: true}, err
	}

	return ImportResult{JobID: importJob.ID(), OrdersCreated: len(orders)}, nil
}
