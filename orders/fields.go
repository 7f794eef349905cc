package orders

// Normalized column names found in the Amazon order history reports.
const (
	OrderDate                 = "orderDate"
	OrderId                   = "orderId"
	Title                     = "title"
	Category                  = "category"
	AsinIsbn                  = "asinIsbn"
	UnspscCode                = "unspscCode"
	Website                   = "website"
	ReleaseDate               = "releaseDate"
	Condition                 = "condition"
	Seller                    = "seller"
	SellerCredentials         = "sellerCredentials"
	ListPricePerUnit          = "listPricePerUnit"
	PurchasePricePerUnit      = "purchasePricePerUnit"
	Quantity                  = "quantity"
	PaymentInstrumentType     = "paymentInstrumentType"
	PurchaseOrderNumber       = "purchaseOrderNumber"
	PoLineNumber              = "poLineNumber"
	OrderingCustomerEmail     = "orderingCustomerEmail"
	ShipmentDate              = "shipmentDate"
	ShippingAddressName       = "shippingAddressName"
	ShippingAddressStreet1    = "shippingAddressStreet1"
	ShippingAddressStreet2    = "shippingAddressStreet2"
	ShippingAddressCity       = "shippingAddressCity"
	ShippingAddressState      = "shippingAddressState"
	ShippingAddressZip        = "shippingAddressZip"
	OrderStatus               = "orderStatus"
	CarrierNameTrackingNumber = "carrierNameTrackingNumber"
	ItemSubtotal              = "itemSubtotal"
	ItemSubtotalTax           = "itemSubtotalTax"
	ItemTotal                 = "itemTotal"
	TaxExemptionApplied       = "taxExemptionApplied"
	TaxExemptionType          = "taxExemptionType"
	ExemptionOptOut           = "exemptionOptOut"
	BuyerName                 = "buyerName"
	Currency                  = "currency"
	GroupName                 = "groupName"

	RefundDate      = "refundDate"
	RefundCondition = "refundCondition"
	RefundAmount    = "refundAmount"
	RefundTaxAmount = "refundTaxAmount"
	RefundReason    = "refundReason"

	Subtotal            = "subtotal"
	ShippingCharge      = "shippingCharge"
	TaxBeforePromotions = "taxBeforePromotions"
	TotalPromotions     = "totalPromotions"
	TaxCharged          = "taxCharged"
	TotalCharged        = "totalCharged"
)

var (
	kItemColumns = []string{
		OrderDate, OrderId, Title, Category, AsinIsbn, UnspscCode, Website,
		ReleaseDate, Condition, Seller, SellerCredentials, ListPricePerUnit,
		PurchasePricePerUnit, Quantity, PaymentInstrumentType,
		PurchaseOrderNumber, PoLineNumber, OrderingCustomerEmail,
		ShipmentDate, ShippingAddressName, ShippingAddressStreet1,
		ShippingAddressStreet2, ShippingAddressCity, ShippingAddressState,
		ShippingAddressZip, OrderStatus, CarrierNameTrackingNumber,
		ItemSubtotal, ItemSubtotalTax, ItemTotal, TaxExemptionApplied,
		TaxExemptionType, ExemptionOptOut, BuyerName, Currency, GroupName,
	}
	kRefundColumns = []string{
		OrderId, OrderDate, Title, Category, AsinIsbn, Website,
		PurchaseOrderNumber, RefundDate, RefundCondition, RefundAmount,
		RefundTaxAmount, TaxExemptionApplied, RefundReason, Quantity, Seller,
		SellerCredentials, BuyerName, GroupName,
	}
	kShipmentColumns = []string{
		OrderDate, OrderId, PaymentInstrumentType, Website,
		PurchaseOrderNumber, OrderingCustomerEmail, ShipmentDate,
		ShippingAddressName, ShippingAddressStreet1, ShippingAddressStreet2,
		ShippingAddressCity, ShippingAddressState, ShippingAddressZip,
		OrderStatus, CarrierNameTrackingNumber, Subtotal, ShippingCharge,
		TaxBeforePromotions, TotalPromotions, TaxCharged, TotalCharged,
		BuyerName, GroupName,
	}
)

// Columns returns the columns of a report in the order Amazon writes them.
// Returns nil for an unknown report type. The caller must not modify the
// returned slice.
func Columns(r ReportType) []string {
	switch r {
	case Items:
		return kItemColumns
	case Refunds:
		return kRefundColumns
	case Shipments:
		return kShipmentColumns
	}
	return nil
}
