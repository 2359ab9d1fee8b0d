// This is free and unencumbered software released into the public domain.

package openpgp

// KeyTable is the compiled-in set of secret keys this library can
// decrypt for, sentinel-terminated in the C source by an Algo==0 entry;
// here it is just a Go slice, with no implied termination sentinel.
type KeyTable []PublicKeyRecord

// lookup finds the first record matching algo and id.
func (t KeyTable) lookup(algo int, id KeyID) (PublicKeyRecord, bool) {
	for _, rec := range t {
		if rec.Algo == algo && rec.ID == id {
			return rec, true
		}
	}
	return PublicKeyRecord{}, false
}

// Context carries the configuration captured by NewContext: the secret-key
// table and the process-wide flags word. Spec.md §9 "Global keytable"
// asks that a from-scratch rewrite pass this in explicitly rather than
// installing a hidden global, so it lives on Context instead of a
// package-level variable; this keeps tables swappable per test.
type Context struct {
	Keys  KeyTable
	Flags Flags
}

// NewContext builds a Context over keys with the given flags. It
// replaces the C source's tgpg_init/tgpg_new pair: init's global-pointer
// installation and new_context's per-call allocation collapse into a
// single constructor now that the table is explicit state rather than a
// global.
func NewContext(keys KeyTable, flags Flags) *Context {
	return &Context{Keys: keys, Flags: flags}
}
