// Package audit persists the append-only audit trail: one record per
// completed request, written after the response is produced and outside
// the transaction of any directory mutation. Records are never updated or
// deleted here.
package audit
