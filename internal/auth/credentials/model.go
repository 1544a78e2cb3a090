package credentials

// Admin is the single seeded administrator identity. Rows are created
// out-of-band (seed data); this subsystem only ever reads them.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
}
