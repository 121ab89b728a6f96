package entities

type Delivery struct {
	Name    string
	Phone   string
	ZIP     string
	Address string
	Region  string
	Email   string
}
