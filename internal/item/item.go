package item

// Item is a catalogue entry held in the document store. Its id is a string
// minted by the store on first save.
type Item struct {
	ID          string  `json:"id" bson:"_id" dynamodbav:"id"`
	Name        string  `json:"name" bson:"name" dynamodbav:"name"`
	Description string  `json:"description" bson:"description" dynamodbav:"description"`
	Price       float64 `json:"price" bson:"price" dynamodbav:"price"`
	Quantity    int     `json:"quantity" bson:"quantity" dynamodbav:"quantity"`
}
