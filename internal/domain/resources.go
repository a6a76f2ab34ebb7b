package domain

// LinkSelf is the link name every resource carries pointing at itself.
const LinkSelf = "self"

// Links maps a link name to a resource location. Presence of a name is the
// system's only signal that the child resource exists.
type Links map[string]string

// ResourceMeta is the REST-side metadata common to every resource
type ResourceMeta struct {
	Etag  string `json:"etag,omitempty"`
	Kind  string `json:"kind,omitempty"`
	Links Links  `json:"links,omitempty"`
}

// Meta exposes the embedded metadata for generic service code
func (m *ResourceMeta) Meta() *ResourceMeta { return m }

// SelfLink returns the resource's self link, or "" when unset
func (m *ResourceMeta) SelfLink() string {
	return m.Links[LinkSelf]
}

// HasLink reports whether the named link is present
func (m *ResourceMeta) HasLink(name string) bool {
	_, ok := m.Links[name]
	return ok
}

// RestObject is implemented by every REST-shaped resource via ResourceMeta
type RestObject interface {
	Meta() *ResourceMeta
}

// DataMeta is the storage-side metadata stored inside every document's data
// sub-object
type DataMeta struct {
	Etag  string `bson:"etag,omitempty"`
	Kind  string `bson:"kind,omitempty"`
	Links Links  `bson:"links,omitempty"`
}

// StorageDocument is implemented by every persisted document shape
type StorageDocument interface {
	DocID() string
	SetDocID(id string)
	DataMeta() *DataMeta
}
