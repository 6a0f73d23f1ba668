// Package trace records per-cycle engine state into a SQLite database.
//
// Each row of the 'trace' table holds the cycle number, the
// microinstruction executed during that cycle, and the register file
// and flags after it.
package trace

import (
	"database/sql"
	"errors"
	"log"
	"os"
	"sync"

	// SQLite driver for database/sql.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/ezrec/microemu/engine"
)

const DEFAULT_BATCH_SIZE = 4096

const createTable = `
CREATE TABLE trace (
	cycle INTEGER PRIMARY KEY,
	micro INTEGER NOT NULL,
	decode TEXT NOT NULL,
	pc INTEGER, asr INTEGER, ar INTEGER, hr INTEGER,
	gr0 INTEGER, gr1 INTEGER, gr2 INTEGER, gr3 INTEGER,
	ir INTEGER, upc INTEGER, usp INTEGER, lc INTEGER,
	flags TEXT NOT NULL
)`

const insertRow = `INSERT INTO trace VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

type row struct {
	cycle uint64
	micro engine.Micro
	regs  engine.Registers
	flags engine.Flags
}

// Recorder buffers cycle records, and writes them to the database in
// batches.
type Recorder struct {
	Verbose   bool // If set, enables verbose logging.
	BatchSize int  // Rows buffered before a flush.

	db        *sql.DB
	statement *sql.Stmt
	path      string
	pending   []row
	count     int
}

// NewRecorder creates a recorder for the database at path. If path is
// empty, a unique name is generated by Init.
func NewRecorder(path string) (rec *Recorder) {
	rec = &Recorder{
		BatchSize: DEFAULT_BATCH_SIZE,
		path:      path,
	}

	return
}

// Recorders open at process exit are flushed by a single atexit handler.
var (
	openLock   sync.Mutex
	openSet    = map[*Recorder]struct{}{}
	atexitOnce sync.Once
)

func flushOpen() {
	openLock.Lock()
	defer openLock.Unlock()

	for rec := range openSet {
		err := rec.Flush()
		if err != nil {
			log.Printf("trace: %v", err)
		}
	}
}

func track(rec *Recorder) {
	atexitOnce.Do(func() { atexit.Register(flushOpen) })

	openLock.Lock()
	openSet[rec] = struct{}{}
	openLock.Unlock()
}

func untrack(rec *Recorder) {
	openLock.Lock()
	delete(openSet, rec)
	openLock.Unlock()
}

// Path returns the database path.
func (rec *Recorder) Path() string {
	return rec.path
}

// Count returns the number of rows recorded, flushed or not.
func (rec *Recorder) Count() int {
	return rec.count
}

// Init creates the database and its table. The database must not
// already exist.
func (rec *Recorder) Init() (err error) {
	if rec.db != nil {
		err = ErrAlreadyOpen
		return
	}

	if rec.path == "" {
		rec.path = "microemu_trace_" + xid.New().String() + ".sqlite3"
	}

	_, err = os.Stat(rec.path)
	if err == nil {
		err = &ErrDatabase{Path: rec.path, Op: "create", Err: ErrExists}
		return
	}

	db, err := sql.Open("sqlite3", rec.path)
	if err != nil {
		err = &ErrDatabase{Path: rec.path, Op: "open", Err: err}
		return
	}

	_, err = db.Exec(createTable)
	if err != nil {
		db.Close()
		err = &ErrDatabase{Path: rec.path, Op: "create", Err: err}
		return
	}

	statement, err := db.Prepare(insertRow)
	if err != nil {
		db.Close()
		err = &ErrDatabase{Path: rec.path, Op: "prepare", Err: err}
		return
	}

	if rec.Verbose {
		log.Printf("trace: recording to %v", rec.path)
	}

	rec.db = db
	rec.statement = statement
	rec.pending = nil
	rec.count = 0

	track(rec)

	return
}

// Record buffers one cycle, flushing once the batch is full.
func (rec *Recorder) Record(cycle uint64, mi engine.Micro, regs engine.Registers, flags engine.Flags) (err error) {
	if rec.db == nil {
		err = ErrNotOpen
		return
	}

	rec.pending = append(rec.pending, row{cycle: cycle, micro: mi, regs: regs, flags: flags})
	rec.count++

	if len(rec.pending) >= max(rec.BatchSize, 1) {
		err = rec.Flush()
	}

	return
}

// Flush writes all buffered rows in a single transaction.
func (rec *Recorder) Flush() (err error) {
	if rec.db == nil {
		err = ErrNotOpen
		return
	}

	if len(rec.pending) == 0 {
		return
	}

	tx, err := rec.db.Begin()
	if err != nil {
		err = &ErrDatabase{Path: rec.path, Op: "begin", Err: err}
		return
	}

	statement := tx.Stmt(rec.statement)
	for _, r := range rec.pending {
		regs := &r.regs
		_, err = statement.Exec(
			r.cycle,
			uint32(r.micro),
			r.micro.String(),
			regs.PC, regs.ASR, regs.AR, regs.HR,
			regs.GR[0], regs.GR[1], regs.GR[2], regs.GR[3],
			regs.IR, regs.UPC, regs.USP, regs.LC,
			r.flags.String(),
		)
		if err != nil {
			err = errors.Join(err, tx.Rollback())
			err = &ErrDatabase{Path: rec.path, Op: "insert", Err: err}
			return
		}
	}

	err = tx.Commit()
	if err != nil {
		err = &ErrDatabase{Path: rec.path, Op: "commit", Err: err}
		return
	}

	if rec.Verbose {
		log.Printf("trace: flushed %v rows", len(rec.pending))
	}

	rec.pending = nil
	return
}

// Close flushes the buffered rows, and closes the database.
func (rec *Recorder) Close() (err error) {
	if rec.db == nil {
		return
	}

	untrack(rec)

	err = rec.Flush()
	err = errors.Join(err, rec.statement.Close(), rec.db.Close())

	rec.db = nil
	rec.statement = nil

	return
}
