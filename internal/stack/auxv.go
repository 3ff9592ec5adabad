package stack

import "strconv"

// A Tag identifies the type of an auxiliary vector entry.
type Tag uintptr

// from linux/auxvec.h and asm/auxvec.h
const (
	AT_NULL          Tag = 0
	AT_IGNORE        Tag = 1
	AT_EXECFD        Tag = 2
	AT_PHDR          Tag = 3
	AT_PHENT         Tag = 4
	AT_PHNUM         Tag = 5
	AT_PAGESZ        Tag = 6
	AT_BASE          Tag = 7
	AT_FLAGS         Tag = 8
	AT_ENTRY         Tag = 9
	AT_NOTELF        Tag = 10
	AT_UID           Tag = 11
	AT_EUID          Tag = 12
	AT_GID           Tag = 13
	AT_EGID          Tag = 14
	AT_PLATFORM      Tag = 15
	AT_HWCAP         Tag = 16
	AT_CLKTCK        Tag = 17
	AT_SECURE        Tag = 23
	AT_BASE_PLATFORM Tag = 24
	AT_RANDOM        Tag = 25
	AT_HWCAP2        Tag = 26
	AT_EXECFN        Tag = 31
	AT_SYSINFO_EHDR  Tag = 33
	AT_MINSIGSTKSZ   Tag = 51
)

var tagNames = [...]string{
	AT_NULL:          "AT_NULL",
	AT_IGNORE:        "AT_IGNORE",
	AT_EXECFD:        "AT_EXECFD",
	AT_PHDR:          "AT_PHDR",
	AT_PHENT:         "AT_PHENT",
	AT_PHNUM:         "AT_PHNUM",
	AT_PAGESZ:        "AT_PAGESZ",
	AT_BASE:          "AT_BASE",
	AT_FLAGS:         "AT_FLAGS",
	AT_ENTRY:         "AT_ENTRY",
	AT_NOTELF:        "AT_NOTELF",
	AT_UID:           "AT_UID",
	AT_EUID:          "AT_EUID",
	AT_GID:           "AT_GID",
	AT_EGID:          "AT_EGID",
	AT_PLATFORM:      "AT_PLATFORM",
	AT_HWCAP:         "AT_HWCAP",
	AT_CLKTCK:        "AT_CLKTCK",
	AT_SECURE:        "AT_SECURE",
	AT_BASE_PLATFORM: "AT_BASE_PLATFORM",
	AT_RANDOM:        "AT_RANDOM",
	AT_HWCAP2:        "AT_HWCAP2",
	AT_EXECFN:        "AT_EXECFN",
	AT_SYSINFO_EHDR:  "AT_SYSINFO_EHDR",
	AT_MINSIGSTKSZ:   "AT_MINSIGSTKSZ",
}

func (t Tag) String() string {
	if t < Tag(len(tagNames)) && tagNames[t] != "" {
		return tagNames[t]
	}
	return "AT_" + strconv.FormatUint(uint64(t), 10)
}

// An Entry is a single (type, value) pair of the auxiliary vector.
// Val holds an integer or an address depending on Tag.
type Entry struct {
	Tag Tag
	Val uintptr
}
