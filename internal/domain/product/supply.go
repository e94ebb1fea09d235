package product

// Supplier 供应商记录
// 一个供应商（tin）供应一种商品（sku）；删除商品时随之删除
type Supplier struct {
	TIN     string
	Name    string
	Address string
	SKU     string
}

// Delivery 配送记录
// 关联到供应商（tin）；删除商品时，先于供应商删除其配送记录
type Delivery struct {
	TIN     string
	Address string
}
