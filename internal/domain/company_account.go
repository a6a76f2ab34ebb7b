package domain

// CompanyAccount is the top-level filing container, exclusively owned by one
// transaction. Its state is carried entirely by its links.
type CompanyAccount struct {
	ResourceMeta
}

// CompanyAccountData is the persisted data sub-object
type CompanyAccountData struct {
	DataMeta `bson:",inline"`
}

// CompanyAccountDocument is the persisted document shape
type CompanyAccountDocument struct {
	ID   string             `bson:"_id"`
	Data CompanyAccountData `bson:"data"`
}

func (d *CompanyAccountDocument) DocID() string       { return d.ID }
func (d *CompanyAccountDocument) SetDocID(id string)  { d.ID = id }
func (d *CompanyAccountDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }

// SmallFull is the mid-level aggregate for a small full accounts filing,
// owned by one company account. It links the periods and notes.
type SmallFull struct {
	ResourceMeta
}

// SmallFullData is the persisted data sub-object
type SmallFullData struct {
	DataMeta `bson:",inline"`
}

// SmallFullDocument is the persisted document shape
type SmallFullDocument struct {
	ID   string        `bson:"_id"`
	Data SmallFullData `bson:"data"`
}

func (d *SmallFullDocument) DocID() string       { return d.ID }
func (d *SmallFullDocument) SetDocID(id string)  { d.ID = id }
func (d *SmallFullDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }
