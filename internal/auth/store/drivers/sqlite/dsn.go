package sqlite

import "net/url"

// filePragmas are applied to every pooled connection. WAL lets readiness
// checks and session reads proceed while a signup transaction writes.
var filePragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"foreign_keys(1)",
}

// FileDSN is the connection string for a database file. Transactions begin
// IMMEDIATE so a read-then-write transaction takes the write lock up front
// and waits on busy_timeout, instead of failing with SQLITE_BUSY when it
// tries to upgrade a read snapshot another writer has moved past.
func FileDSN(path string) string {
	q := url.Values{
		"_pragma": filePragmas,
		"_txlock": {"immediate"},
	}
	return "file:" + path + "?" + q.Encode()
}
