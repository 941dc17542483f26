package credentials

//go:generate go run github.com/dmarkham/enumer -type Role -trimprefix Role -transform kebab -yaml -output role.gen.go

// Role is the authorization level a credential carries. Read-write is
// required for mutations; read suffices for listing.
type Role int

const (
	RoleRead Role = iota
	RoleReadWrite
)

// CanWrite reports whether the role authorizes add and delete operations.
func (i Role) CanWrite() bool {
	return i == RoleReadWrite
}
