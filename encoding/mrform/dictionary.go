package mrform

import "sort"

// DictEntry is one row of the tag dictionary: a (group, key) pair maps
// to the type the header must carry and a human-readable name for the
// printer (spec.md §4.2).
type DictEntry struct {
	Group uint8
	Key   uint32
	Type  TypeCode
	Name  string
}

// phiKeys is the fixed PHI-key set (spec.md §4.2). Membership does not
// depend on group.
var phiKeys = map[uint32]bool{
	0x55F2: true,
	0x55F3: true,
	0x55FC: true,
	0x560C: true,
	0x560D: true,
	0x5612: true,
	0x6D77: true,
	0x6D80: true,
	0x6D83: true,
	0x6D8A: true,
}

// IsPHIKey reports whether key carries protected health information
// wherever it appears, regardless of group.
func IsPHIKey(key uint32) bool { return phiKeys[key] }

// Lookup returns every dictionary entry recorded for (group, key), via
// binary search over dictionaryTable (spec.md §4.2: "a static, sorted
// table ... used ... to validate every record"; checkDictionary's
// self-check guarantees the table is sorted by (Group, Key) before
// Lookup ever runs). Most keys resolve to exactly one entry; a handful
// (key 0x17E3, spec.md §9 Open Question 4) legitimately resolve to more
// than one distinct type, recorded as adjacent rows, observed at
// different file positions.
func Lookup(group uint8, key uint32) ([]DictEntry, bool) {
	table := dictionaryTable
	i := sort.Search(len(table), func(i int) bool {
		e := table[i]
		if e.Group != group {
			return e.Group >= group
		}
		return e.Key >= key
	})
	j := i
	for j < len(table) && table[j].Group == group && table[j].Key == key {
		j++
	}
	if i == j {
		return nil, false
	}
	return table[i:j], true
}

// Validate reports whether (group, key, typ) is a dictionary-sanctioned
// triple.
func Validate(group uint8, key uint32, typ TypeCode) bool {
	entries, ok := Lookup(group, key)
	if !ok {
		return false
	}
	for _, e := range entries {
		if e.Type == typ {
			return true
		}
	}
	return false
}

// Name returns the dictionary's human-readable label for (group, key),
// or "" if the pair is unknown. When more than one entry exists for the
// pair (see Lookup), the first recorded name is used; in the observed
// table the names agree across the duplicate rows.
func Name(group uint8, key uint32) string {
	entries, ok := Lookup(group, key)
	if !ok || len(entries) == 0 {
		return ""
	}
	return entries[0].Name
}

// DictionaryChecksum is the SeaHash content fingerprint of the table
// computed at startup (SPEC_FULL.md §C.1). It is exposed for callers to
// compare between builds; nothing in this module checks it against a
// recorded value.
var DictionaryChecksum uint64

func init() {
	if err := checkDictionary(dictionaryTable); err != nil {
		panic(err)
	}
	DictionaryChecksum = dictionaryChecksum(dictionaryTable)
}

// duplicateKeyException is the one documented violation of "key unique
// within a group": 0x17E3 is recorded with two distinct types, observed
// at different file positions (spec.md §9, Open Question 4). The
// self-check tolerates exactly this key repeating within a group,
// provided its type actually differs each time.
const duplicateKeyException = 0x17E3

// checkDictionary is the startup self-check spec.md §4.2/§8 (property 9)
// requires: keys strictly increasing within each group (modulo the
// single documented exception above), groups non-decreasing overall.
func checkDictionary(table []DictEntry) error {
	if len(table) == 0 {
		return newErr(DictionaryCorrupt, 0, "dictionary table is empty")
	}
	var lastGroup uint8
	var lastKey uint32
	var lastType TypeCode
	haveLast := false
	for i, e := range table {
		if haveLast {
			if e.Group < lastGroup {
				return newErr(DictionaryCorrupt, 0, "row %d: group %d < preceding group %d", i, e.Group, lastGroup)
			}
			if e.Group == lastGroup {
				switch {
				case e.Key < lastKey:
					return newErr(DictionaryCorrupt, 0, "row %d: key %#x not strictly greater than preceding key %#x in group %d", i, e.Key, lastKey, e.Group)
				case e.Key == lastKey:
					if e.Key != duplicateKeyException {
						return newErr(DictionaryCorrupt, 0, "row %d: key %#x repeats in group %d but is not the documented 0x17E3 exception", i, e.Key, e.Group)
					}
					if e.Type == lastType {
						return newErr(DictionaryCorrupt, 0, "row %d: duplicate key %#x in group %d repeats the same type %#08x", i, e.Key, e.Group, uint32(e.Type))
					}
				}
			}
		}
		lastGroup, lastKey, lastType, haveLast = e.Group, e.Key, e.Type, true
	}
	return nil
}

// dictionaryChecksum feeds every row's fields through seahash, so a
// single flipped byte anywhere in the generated table changes the
// result. It only computes the fingerprint; it does not compare it
// against anything.
func dictionaryChecksum(table []DictEntry) uint64 {
	buf := make([]byte, 0, len(table)*12)
	for _, e := range table {
		buf = append(buf, e.Group,
			byte(e.Key), byte(e.Key>>8), byte(e.Key>>16), byte(e.Key>>24),
			byte(e.Type), byte(e.Type>>8), byte(e.Type>>16), byte(e.Type>>24))
		buf = append(buf, e.Name...)
		buf = append(buf, 0)
	}
	return seahashSum64(buf)
}

// sortedGroups returns the distinct group numbers present in the
// dictionary, in ascending order. Nothing in the module calls it.
func sortedGroups(table []DictEntry) []uint8 {
	seen := map[uint8]bool{}
	var out []uint8
	for _, e := range table {
		if !seen[e.Group] {
			seen[e.Group] = true
			out = append(out, e.Group)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
