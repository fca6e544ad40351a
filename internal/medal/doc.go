// Package medal provides the leaderboard types written for the medal widget.
//
// A Row is one committee's standing as read from the source medal table. Rows keep
// the table's displayed order; AssignRanks stamps competition-style tied ranks onto
// them and Assemble wraps the top rows (or a placeholder roster when the table could
// not be read) into the Payload that is persisted as medals.json.
package medal
