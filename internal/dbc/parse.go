package dbc

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/tegimeki/dbc-data/internal/diagnostic"
)

var (
	reVersion = regexp.MustCompile(`^VERSION\s+"(.*)"`)
	reMessage = regexp.MustCompile(`^BO_\s+(\d+)\s+(\w+)\s*:\s*(\d+)\s+(\S+)`)
	reSignal  = regexp.MustCompile(`^\s*SG_\s+(\w+)\s*:\s*(\d+)\|(\d+)@([01])([+-])\s*\(([^,]+),([^)]+)\)\s*\[([^|]*)\|([^\]]*)\]\s*"([^"]*)"`)
	reCycle   = regexp.MustCompile(`^BA_\s+"GenMsgCycleTime"\s+BO_\s+(\d+)\s+(\d+)\s*;`)
	reSchema  = regexp.MustCompile(`^BA_\s+"SchemaVersion"\s+"([^"]*)"\s*;`)
)

const extendedIDFlag = uint32(0x80000000)

// Parse reads a DBC file and builds a Database, collecting recoverable
// problems into diags rather than aborting on them. It returns a non-nil
// error only for Schema-unreadable conditions (the reader itself fails);
// everything else is tolerated per-message or per-signal with a diagnostic.
func Parse(r io.Reader, diags *diagnostic.Bag) (*Database, error) {
	db := &Database{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var current *MessageDescriptor
	cycleTimes := map[uint32]uint32{}
	line := 0

	for scanner.Scan() {
		line++
		text := scanner.Text()
		trimmed := strings.TrimRight(text, "\r\n")

		switch {
		case reVersion.MatchString(trimmed):
			db.Version = reVersion.FindStringSubmatch(trimmed)[1]

		case reMessage.MatchString(trimmed):
			if current != nil {
				db.Messages = append(db.Messages, *current)
			}
			m := reMessage.FindStringSubmatch(trimmed)
			idVal, err := strconv.ParseUint(m[1], 10, 32)
			if err != nil {
				diags.Errorf(diagnostic.CategorySchema, line, "unparsable message id %q", m[1])
				current = nil
				continue
			}
			dlc, err := strconv.Atoi(m[3])
			if err != nil {
				diags.Errorf(diagnostic.CategorySchema, line, "unparsable DLC %q", m[3])
				current = nil
				continue
			}
			id := uint32(idVal)
			extended := id&extendedIDFlag != 0
			current = &MessageDescriptor{
				Name:     m[2],
				ID:       id &^ extendedIDFlag,
				Extended: extended,
				DLC:      dlc,
				Line:     line,
			}

		case reSignal.MatchString(trimmed):
			if current == nil {
				diags.Warnf(diagnostic.CategorySchema, line, "SG_ line outside of any BO_ block, ignored")
				continue
			}
			m := reSignal.FindStringSubmatch(trimmed)
			sig, err := parseSignal(m, line)
			if err != nil {
				diags.Errorf(diagnostic.CategorySchema, line, "%v", err)
				continue
			}
			current.Signals = append(current.Signals, *sig)

		case reCycle.MatchString(trimmed):
			m := reCycle.FindStringSubmatch(trimmed)
			id, err1 := strconv.ParseUint(m[1], 10, 32)
			ct, err2 := strconv.ParseUint(m[2], 10, 32)
			if err1 != nil || err2 != nil {
				diags.Warnf(diagnostic.CategorySchema, line, "unparsable GenMsgCycleTime attribute")
				continue
			}
			cycleTimes[uint32(id)&^extendedIDFlag] = uint32(ct)

		case reSchema.MatchString(trimmed):
			db.SchemaVersion = reSchema.FindStringSubmatch(trimmed)[1]
		}
	}
	if current != nil {
		db.Messages = append(db.Messages, *current)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dbc: read failed: %w", err)
	}

	for i := range db.Messages {
		if ct, ok := cycleTimes[db.Messages[i].ID]; ok {
			db.Messages[i].CycleTime = ct
			db.Messages[i].HasCycle = true
		}
	}

	return db, nil
}

func parseSignal(m []string, line int) (*SignalDescriptor, error) {
	start, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("signal %s: bad start bit %q", m[1], m[2])
	}
	width, err := strconv.Atoi(m[3])
	if err != nil {
		return nil, fmt.Errorf("signal %s: bad width %q", m[1], m[3])
	}
	order := LittleEndian
	if m[4] == "0" {
		order = BigEndian
	}
	sign := Unsigned
	if m[5] == "-" {
		sign = Signed
	}
	factor, err := strconv.ParseFloat(strings.TrimSpace(m[6]), 64)
	if err != nil {
		return nil, fmt.Errorf("signal %s: bad factor %q", m[1], m[6])
	}
	offset, err := strconv.ParseFloat(strings.TrimSpace(m[7]), 64)
	if err != nil {
		return nil, fmt.Errorf("signal %s: bad offset %q", m[1], m[7])
	}
	min, _ := strconv.ParseFloat(strings.TrimSpace(m[8]), 64)
	max, _ := strconv.ParseFloat(strings.TrimSpace(m[9]), 64)

	return &SignalDescriptor{
		Name:      m[1],
		StartBit:  start,
		Width:     width,
		ByteOrder: order,
		Sign:      sign,
		Factor:    factor,
		Offset:    offset,
		Min:       min,
		Max:       max,
		Unit:      m[10],
		Line:      line,
	}, nil
}
