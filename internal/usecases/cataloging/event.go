package cataloging

type Operation string

const (
	OperationCreateProduct Operation = "create_product"
	OperationUpdateProduct Operation = "update_product"
	OperationDeleteProduct Operation = "delete_product"
	OperationAddLog        Operation = "add_log"
	OperationUpdateLog     Operation = "update_log"
	OperationDeleteLog     Operation = "delete_log"
)

// Event descreve uma mutação aplicada ao catálogo
type Event struct {
	Operation Operation
	ProductID string
	LogID     string
}

type Listener func(Event)
