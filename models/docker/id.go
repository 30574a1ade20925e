package docker

// shortHashLen is the number of characters the daemon prints for a container hash.
const shortHashLen = 12

// ContainerID refers to a container either by its hash or by its assigned name.
type ContainerID interface {
	Value() string
	String() string
}

// HashID is the hex hash the daemon assigns on creation.
type HashID string

func (id HashID) Value() string {
	return string(id)
}

func (id HashID) String() string {
	return string(id)
}

// ShortHash returns the first 12 characters of the hash, or the whole
// hash if it is shorter than that.
func (id HashID) ShortHash() string {
	if len(id) < shortHashLen {
		return string(id)
	}
	return string(id[:shortHashLen])
}

// NameID is a user-assigned container name.
type NameID string

func (id NameID) Value() string {
	return string(id)
}

func (id NameID) String() string {
	return string(id)
}
