package service

// Page-local fallbacks shown when the storefront API rejects an action
// without explaining why.
const (
	MsgInvalidCredentials  = "Invalid credentials"
	MsgRegisterFailed      = "Registration failed"
	MsgCatalogFailed       = "Could not load products"
	MsgAddToCartFailed     = "Could not add the product to the cart"
	MsgCartFailed          = "Could not load the cart"
	MsgUpdateItemFailed    = "Could not update item"
	MsgRemoveItemFailed    = "Could not remove item"
	MsgCheckoutFailed      = "Could not process checkout"
	MsgCheckoutDone        = "Your purchase has been processed"
	MsgHistoryFailed       = "Could not load history"
	MsgPurchasesFailed     = "Could not load purchases"
	MsgProductNotFound     = "Product not found"
	MsgCreateProductFailed = "Could not create product"
	MsgUpdateProductFailed = "Could not update product"
	MsgDeleteProductFailed = "Could not delete product"
	MsgProductCreated      = "Product created"
	MsgProductUpdated      = "Product updated"
	MsgProductDeleted      = "Product deleted"
	MsgRegistered          = "Account created, you can log in now"
)
