package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"errors"

	"pos-terminal/internal/domain/cart"
	"pos-terminal/internal/domain/catalog"
	"pos-terminal/internal/domain/pricing"
	"pos-terminal/internal/infra"
	"pos-terminal/internal/pkg/clock"
	"pos-terminal/internal/pkg/errs"
	"pos-terminal/internal/pkg/patch"
	"pos-terminal/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddItemRequest struct {
	ProductID string
	VariantID string
	Choices   map[string][]string
	Quantity  int
	Note      string
}

// ScanResult reports what a barcode resolved to. Products with variants are not added; the
// caller is expected to ask for a variant and then call AddItem.
type ScanResult struct {
	ProductID string
	Added     bool
}

type CartCommands interface {
	AddItem(ctx context.Context, req AddItemRequest) error
	ScanBarcode(ctx context.Context, code string) (ScanResult, error)
	UpdateQuantity(ctx context.Context, index, quantity int) error
	RemoveItem(ctx context.Context, index int) error
	Clear(ctx context.Context) error
	SetCustomer(ctx context.Context, customer string) error
	SetTable(ctx context.Context, table string) error
	HoldOrder(ctx context.Context) (uuid.UUID, error)
	ResumeHeldOrder(ctx context.Context, id uuid.UUID) error
	DiscardHeldOrder(ctx context.Context, id uuid.UUID) error
}

type cartCommandsImpl struct {
	till     *shared.Till
	products ProductFinder
	carts    CartStore
	held     HeldOrderStore
	calc     pricing.Calculator
	clock    clock.Clock
}

func NewCartCommands(
	till *shared.Till,
	products ProductFinder,
	carts CartStore,
	held HeldOrderStore,
	calc pricing.Calculator,
	clk clock.Clock,
) CartCommands {
	return &cartCommandsImpl{
		till:     till,
		products: products,
		carts:    carts,
		held:     held,
		calc:     calc,
		clock:    clk,
	}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, req AddItemRequest) error {
	product, err := c.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return productLookupErr(err, errs.ErrProductNotFound)
	}
	return c.add(ctx, product, req)
}

func (c *cartCommandsImpl) ScanBarcode(ctx context.Context, code string) (ScanResult, error) {
	product, err := c.products.FindByBarcode(ctx, code)
	if err != nil {
		return ScanResult{}, productLookupErr(err, errs.ErrUnknownBarcode)
	}

	result := ScanResult{ProductID: product.ID()}
	if product.HasVariants() {
		return result, nil
	}
	if err := c.add(ctx, product, AddItemRequest{ProductID: product.ID(), Quantity: 1}); err != nil {
		return ScanResult{}, err
	}
	result.Added = true
	return result, nil
}

func (c *cartCommandsImpl) add(ctx context.Context, product *catalog.Product, req AddItemRequest) error {
	quantity := patch.NonZero(req.Quantity, 1)

	offer, err := product.Offer(req.VariantID, req.Choices)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidSelection)
	}
	line, err := cart.NewLineItem(offer, quantity, req.Note)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return c.mutate(ctx, func(ct *cart.Cart) error {
		ct.Add(line, c.clock.Now())
		return nil
	})
}

func (c *cartCommandsImpl) UpdateQuantity(ctx context.Context, index, quantity int) error {
	return c.mutate(ctx, func(ct *cart.Cart) error {
		return lineErr(ct.UpdateQuantity(index, quantity, c.clock.Now()))
	})
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, index int) error {
	return c.mutate(ctx, func(ct *cart.Cart) error {
		return lineErr(ct.Remove(index, c.clock.Now()))
	})
}

func (c *cartCommandsImpl) Clear(ctx context.Context) error {
	return c.mutate(ctx, func(ct *cart.Cart) error {
		ct.Clear(c.clock.Now())
		return nil
	})
}

func (c *cartCommandsImpl) SetCustomer(ctx context.Context, customer string) error {
	return c.mutate(ctx, func(ct *cart.Cart) error {
		ct.SetCustomer(customer, c.clock.Now())
		return nil
	})
}

func (c *cartCommandsImpl) SetTable(ctx context.Context, table string) error {
	return c.mutate(ctx, func(ct *cart.Cart) error {
		ct.SetTable(table, c.clock.Now())
		return nil
	})
}

func (c *cartCommandsImpl) HoldOrder(ctx context.Context) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.mutate(ctx, func(ct *cart.Cart) error {
		held, err := ct.Hold(c.clock.Now())
		if err != nil {
			if errors.Is(err, cart.ErrEmptyHold) {
				return errs.Mark(err, errs.ErrEmptyCart)
			}
			return err
		}
		if err := c.held.Save(ctx, held); err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		id = held.ID
		return nil
	})
	return id, err
}

// ResumeHeldOrder moves a held order back into the cart. The cart must be empty so nothing on
// it is silently lost.
func (c *cartCommandsImpl) ResumeHeldOrder(ctx context.Context, id uuid.UUID) error {
	c.till.Lock()
	defer c.till.Unlock()

	current, err := c.load(ctx)
	if err != nil {
		return err
	}
	if !current.IsEmpty() {
		return errs.ErrCartNotResumable
	}

	held, err := c.held.FindByID(ctx, id)
	if err != nil {
		return heldOrderErr(err)
	}

	restored := cart.Restore(held.Cart)
	if err := c.save(ctx, restored); err != nil {
		return err
	}
	if err := c.held.Delete(ctx, id); err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	c.rebaseCheckout(restored)
	return nil
}

func (c *cartCommandsImpl) DiscardHeldOrder(ctx context.Context, id uuid.UUID) error {
	if _, err := c.held.FindByID(ctx, id); err != nil {
		return heldOrderErr(err)
	}
	if err := c.held.Delete(ctx, id); err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return nil
}

// mutate runs fn on the stored cart under the till lock and persists the result. An open
// checkout follows the new total.
func (c *cartCommandsImpl) mutate(ctx context.Context, fn func(*cart.Cart) error) error {
	c.till.Lock()
	defer c.till.Unlock()

	ct, err := c.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(ct); err != nil {
		return err
	}
	if err := c.save(ctx, ct); err != nil {
		return err
	}
	c.rebaseCheckout(ct)
	return nil
}

func (c *cartCommandsImpl) load(ctx context.Context) (*cart.Cart, error) {
	ct, err := c.carts.Load(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return ct, nil
}

func (c *cartCommandsImpl) save(ctx context.Context, ct *cart.Cart) error {
	if err := c.carts.Save(ctx, ct); err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return nil
}

// caller holds the till lock
func (c *cartCommandsImpl) rebaseCheckout(ct *cart.Cart) {
	if c.till.Checkout == nil {
		return
	}
	if err := c.till.Checkout.Rebase(ct.Totals(c.calc).Total); err != nil {
		c.till.Checkout = nil
	}
}

func productLookupErr(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrStoreOperationFailed)
}

func heldOrderErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrHeldOrderNotFound)
	}
	return errs.Mark(err, errs.ErrStoreOperationFailed)
}

func lineErr(err error) error {
	if errors.Is(err, cart.ErrLineNotFound) {
		return errs.Mark(err, errs.ErrLineNotFound)
	}
	return err
}
