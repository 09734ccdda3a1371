package app

import (
	"context"
	"errors"
	"testing"
	"time"

	braintree "github.com/braintree-go/braintree-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway is a hand-written Gateway stub. Pointer receivers so tests can
// inspect what the service sent to the gateway.
type fakeGateway struct {
	env          string
	token        string
	tokenErr     error
	tokenCust    string
	customers    map[string]*braintree.Customer
	findErr      error
	created      *braintree.CustomerRequest
	transactions []*braintree.Transaction
	searchErr    error
	txFindErr    error
	saleReq      *braintree.TransactionRequest
	saleResult   *braintree.Transaction
	saleErr      error
	refundID     string
	refundAmount *braintree.Decimal
	refundErr    error
	voidErr      error
}

func (f *fakeGateway) Environment() string {
	if f.env == "" {
		return "sandbox"
	}
	return f.env
}

func (f *fakeGateway) GenerateToken(ctx context.Context, customerID string) (string, error) {
	f.tokenCust = customerID
	return f.token, f.tokenErr
}

func (f *fakeGateway) CreateCustomer(ctx context.Context, req *braintree.CustomerRequest) (*braintree.Customer, error) {
	f.created = req
	return &braintree.Customer{Id: "new", FirstName: req.FirstName}, nil
}

func (f *fakeGateway) FindCustomer(ctx context.Context, id string) (*braintree.Customer, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return &braintree.Customer{Id: id}, nil
}

func (f *fakeGateway) AllCustomers(ctx context.Context) ([]*braintree.Customer, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	var all []*braintree.Customer
	for _, c := range f.customers {
		all = append(all, c)
	}
	return all, nil
}

func (f *fakeGateway) CustomerTransactions(ctx context.Context, customerID string) ([]*braintree.Transaction, error) {
	return f.transactions, f.searchErr
}

func (f *fakeGateway) FindTransaction(ctx context.Context, id string) (*braintree.Transaction, error) {
	if f.txFindErr != nil {
		return nil, f.txFindErr
	}
	return &braintree.Transaction{Id: id, Status: "settled", Type: "sale"}, nil
}

func (f *fakeGateway) Sale(ctx context.Context, req *braintree.TransactionRequest) (*braintree.Transaction, error) {
	f.saleReq = req
	if f.saleErr != nil {
		return nil, f.saleErr
	}
	if f.saleResult != nil {
		return f.saleResult, nil
	}
	return &braintree.Transaction{Id: "tx1", Status: "submitted_for_settlement", Type: "sale"}, nil
}

func (f *fakeGateway) Refund(ctx context.Context, transactionID string, amount *braintree.Decimal) (*braintree.Transaction, error) {
	f.refundID = transactionID
	f.refundAmount = amount
	if f.refundErr != nil {
		return nil, f.refundErr
	}
	return &braintree.Transaction{Id: transactionID, Status: "settlement_pending", Type: "credit"}, nil
}

func (f *fakeGateway) Void(ctx context.Context, transactionID string) (*braintree.Transaction, error) {
	if f.voidErr != nil {
		return nil, f.voidErr
	}
	return &braintree.Transaction{Id: transactionID, Status: "voided", Type: "sale"}, nil
}

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func Test_CustomerTransactions_EmptyResult(t *testing.T) {
	svc := NewService(&fakeGateway{})
	txs, err := svc.CustomerTransactions(context.Background(), "cust1")
	assert.NoError(t, err)
	assert.NotNil(t, txs)
	assert.Len(t, txs, 0)
}

func Test_CustomerTransactions_SortedNewestFirst(t *testing.T) {
	gw := &fakeGateway{transactions: []*braintree.Transaction{
		{Id: "old", CreatedAt: ts("2024-01-01T10:00:00Z")},
		{Id: "newest", CreatedAt: ts("2024-03-01T10:00:00Z")},
		{Id: "mid-a", CreatedAt: ts("2024-02-01T10:00:00Z")},
		{Id: "mid-b", CreatedAt: ts("2024-02-01T10:00:00Z")},
	}}
	svc := NewService(gw)

	txs, err := svc.CustomerTransactions(context.Background(), "cust1")
	require.NoError(t, err)
	require.Len(t, txs, 4)
	assert.Equal(t, "newest", txs[0].ID)
	// Equal timestamps keep the gateway's order.
	assert.Equal(t, "mid-a", txs[1].ID)
	assert.Equal(t, "mid-b", txs[2].ID)
	assert.Equal(t, "old", txs[3].ID)
}

func Test_CustomerSubscriptions_NoPaymentMethods(t *testing.T) {
	gw := &fakeGateway{customers: map[string]*braintree.Customer{
		"cust1": {Id: "cust1"},
	}}
	svc := NewService(gw)

	subs, err := svc.CustomerSubscriptions(context.Background(), "cust1")
	assert.NoError(t, err)
	assert.NotNil(t, subs)
	assert.Len(t, subs, 0)
}

func Test_CustomerSubscriptions_FlattensAcrossPaymentMethods(t *testing.T) {
	gw := &fakeGateway{customers: map[string]*braintree.Customer{
		"cust1": {
			Id: "cust1",
			CreditCards: &braintree.CreditCards{CreditCard: []*braintree.CreditCard{
				{
					Token: "card-a",
					Subscriptions: &braintree.Subscriptions{Subscription: []*braintree.Subscription{
						{Id: "sub1", PlanId: "monthly", Status: "Active", Price: braintree.NewDecimal(999, 2), NextBillingDate: "2024-05-01"},
						{Id: "sub2", PlanId: "yearly", Status: "Canceled"},
					}},
				},
				{Token: "card-b"},
			}},
			PayPalAccounts: &braintree.PayPalAccounts{PayPalAccount: []*braintree.PayPalAccount{
				{
					Token: "pp-a",
					Subscriptions: &braintree.Subscriptions{Subscription: []*braintree.Subscription{
						{Id: "sub3", PlanId: "monthly", Status: "Active"},
					}},
				},
			}},
		},
	}}
	svc := NewService(gw)

	subs, err := svc.CustomerSubscriptions(context.Background(), "cust1")
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "sub1", subs[0].ID)
	assert.Equal(t, "9.99", subs[0].Price)
	assert.Equal(t, "2024-05-01", subs[0].NextBillingDate)
	assert.NotNil(t, subs[0].AddOns)
	assert.NotNil(t, subs[0].Discounts)
	assert.Equal(t, "sub2", subs[1].ID)
	assert.Equal(t, "sub3", subs[2].ID)
}

func Test_ListCustomers_MapsEveryResult(t *testing.T) {
	gw := &fakeGateway{customers: map[string]*braintree.Customer{
		"c1": {Id: "c1", FirstName: "Ada"},
		"c2": {Id: "c2", FirstName: "Grace"},
	}}
	svc := NewService(gw)

	custs, err := svc.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, custs, 2)
	for _, c := range custs {
		assert.NotEmpty(t, c.ID)
		assert.NotNil(t, c.PaymentMethods)
	}
}

func Test_FindCustomer_AnyErrorIsNotFound(t *testing.T) {
	gw := &fakeGateway{findErr: errors.New("connection reset")}
	svc := NewService(gw)

	_, err := svc.FindCustomer(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func Test_FindTransaction_AnyErrorIsNotFound(t *testing.T) {
	gw := &fakeGateway{txFindErr: errors.New("503 from upstream")}
	svc := NewService(gw)

	_, err := svc.FindTransaction(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func Test_Checkout_SubmitsForSettlement(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw)

	tx, err := svc.Checkout(context.Background(), CheckoutInput{
		PaymentMethodNonce: "fake-valid-nonce",
		Amount:             "10.00",
		DeviceData:         "dd",
	})
	require.NoError(t, err)
	assert.Equal(t, "submitted_for_settlement", tx.Status)

	require.NotNil(t, gw.saleReq)
	assert.Equal(t, "sale", string(gw.saleReq.Type))
	assert.Equal(t, "fake-valid-nonce", gw.saleReq.PaymentMethodNonce)
	assert.Equal(t, "10.00", gw.saleReq.Amount.String())
	require.NotNil(t, gw.saleReq.Options)
	assert.True(t, gw.saleReq.Options.SubmitForSettlement)
}

func Test_Checkout_InvalidAmountRejectedLocally(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw)

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		PaymentMethodNonce: "fake-valid-nonce",
		Amount:             "not-a-number",
	})
	var rej *RejectionError
	assert.True(t, errors.As(err, &rej))
	assert.Nil(t, gw.saleReq, "gateway must not be contacted for an unparsable amount")
}

func Test_Refund_FullWhenAmountOmitted(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw)

	_, err := svc.Refund(context.Background(), "tx9", "")
	require.NoError(t, err)
	assert.Equal(t, "tx9", gw.refundID)
	assert.Nil(t, gw.refundAmount)
}

func Test_Refund_PartialForGivenAmount(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw)

	_, err := svc.Refund(context.Background(), "tx9", "5.00")
	require.NoError(t, err)
	require.NotNil(t, gw.refundAmount)
	assert.Equal(t, "5.00", gw.refundAmount.String())
}

func Test_Void_RejectionPassesThrough(t *testing.T) {
	gw := &fakeGateway{voidErr: &RejectionError{Message: "Transaction can only be voided if status is authorized"}}
	svc := NewService(gw)

	_, err := svc.Void(context.Background(), "tx9")
	var rej *RejectionError
	require.True(t, errors.As(err, &rej))
	assert.Contains(t, rej.Message, "voided")
}

func Test_TestConnection_ReturnsEnvironment(t *testing.T) {
	svc := NewService(&fakeGateway{env: "sandbox", token: "tok"})
	env, err := svc.TestConnection(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "sandbox", env)
}

func Test_TestConnection_FailureIsGatewayError(t *testing.T) {
	svc := NewService(&fakeGateway{tokenErr: errors.New("401 unauthorized")})
	_, err := svc.TestConnection(context.Background())
	assert.True(t, errors.Is(err, ErrGateway))
}

func Test_GenerateClientToken_ScopesToCustomer(t *testing.T) {
	gw := &fakeGateway{token: "tok_123"}
	svc := NewService(gw)

	token, err := svc.GenerateClientToken(context.Background(), "cust1")
	require.NoError(t, err)
	assert.Equal(t, "tok_123", token)
	assert.Equal(t, "cust1", gw.tokenCust)
}

func Test_GenerateClientToken_AllFailuresCollapse(t *testing.T) {
	gw := &fakeGateway{tokenErr: errors.New("malformed customer id")}
	svc := NewService(gw)

	_, err := svc.GenerateClientToken(context.Background(), "bad id")
	assert.True(t, errors.Is(err, ErrGateway))
}

func Test_CreateCustomer_ForwardsNonce(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw)

	cust, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{
		FirstName:          "Ada",
		LastName:           "Lovelace",
		Email:              "ada@example.com",
		Phone:              "555-0100",
		PaymentMethodNonce: "fake-valid-nonce",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", cust.FirstName)
	require.NotNil(t, gw.created)
	assert.Equal(t, "fake-valid-nonce", gw.created.PaymentMethodNonce)
}
