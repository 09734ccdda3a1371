package btgw

import (
	"context"

	braintree "github.com/braintree-go/braintree-go"

	"github.com/paydemo/braintree-portal/api/config"
	gw "github.com/paydemo/braintree-portal/api/services/braintree/gateway"
)

// client is the braintree-go backed implementation of the gateway.
type client struct {
	bt  *braintree.Braintree
	env string
}

// New returns a Gateway backed by the Braintree SDK, configured from cfg.
func New(cfg *config.Config) gw.Gateway {
	env := braintree.Sandbox
	if cfg.Environment == config.EnvProduction {
		env = braintree.Production
	}
	return &client{
		bt:  braintree.New(env, cfg.MerchantID, cfg.PublicKey, cfg.PrivateKey),
		env: cfg.Environment,
	}
}

func (c *client) Environment() string { return c.env }

func (c *client) GenerateToken(ctx context.Context, customerID string) (string, error) {
	if customerID != "" {
		return c.bt.ClientToken().GenerateWithCustomer(ctx, customerID)
	}
	return c.bt.ClientToken().Generate(ctx)
}

func (c *client) CreateCustomer(ctx context.Context, req *braintree.CustomerRequest) (*braintree.Customer, error) {
	return c.bt.Customer().Create(ctx, req)
}

func (c *client) FindCustomer(ctx context.Context, id string) (*braintree.Customer, error) {
	return c.bt.Customer().Find(ctx, id)
}

// AllCustomers runs an unbounded customer search and drains every page.
func (c *client) AllCustomers(ctx context.Context) ([]*braintree.Customer, error) {
	query := new(braintree.SearchQuery)
	ids, err := c.bt.Customer().SearchIDs(ctx, query)
	if err != nil {
		return nil, err
	}
	var all []*braintree.Customer
	for page := 1; page <= ids.PageCount; page++ {
		result, err := c.bt.Customer().SearchPage(ctx, query, ids, page)
		if err != nil {
			return nil, err
		}
		all = append(all, result.Customers...)
	}
	return all, nil
}

func (c *client) CustomerTransactions(ctx context.Context, customerID string) ([]*braintree.Transaction, error) {
	query := new(braintree.SearchQuery)
	f := query.AddTextField("customer-id")
	f.Is = customerID

	result, err := c.bt.Transaction().Search(ctx, query)
	if err != nil {
		return nil, err
	}
	var all []*braintree.Transaction
	for result != nil && len(result.Transactions) > 0 {
		all = append(all, result.Transactions...)
		result, err = c.bt.Transaction().SearchNext(ctx, query, result)
		if err != nil {
			return nil, err
		}
	}
	return all, nil
}

func (c *client) FindTransaction(ctx context.Context, id string) (*braintree.Transaction, error) {
	return c.bt.Transaction().Find(ctx, id)
}

func (c *client) Sale(ctx context.Context, req *braintree.TransactionRequest) (*braintree.Transaction, error) {
	return c.bt.Transaction().Create(ctx, req)
}

func (c *client) Refund(ctx context.Context, transactionID string, amount *braintree.Decimal) (*braintree.Transaction, error) {
	if amount != nil {
		return c.bt.Transaction().Refund(ctx, transactionID, amount)
	}
	return c.bt.Transaction().Refund(ctx, transactionID)
}

func (c *client) Void(ctx context.Context, transactionID string) (*braintree.Transaction, error) {
	return c.bt.Transaction().Void(ctx, transactionID)
}
