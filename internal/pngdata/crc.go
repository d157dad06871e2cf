package pngdata

import "sync"

// crcPolynomial is the reversed IEEE 802.3 polynomial used by PNG.
const crcPolynomial = 0xEDB88320

var (
	crcTableOnce sync.Once
	crcTableData [256]uint32
)

// crcTable returns the process-wide lookup table, building it on first use.
func crcTable() *[256]uint32 {
	crcTableOnce.Do(func() {
		for n := 0; n < 256; n++ {
			c := uint32(n)
			for k := 0; k < 8; k++ {
				if c&1 != 0 {
					c = crcPolynomial ^ (c >> 1)
				} else {
					c >>= 1
				}
			}
			crcTableData[n] = c
		}
	})
	return &crcTableData
}

// Table returns a copy of the CRC-32 lookup table.
func Table() [256]uint32 {
	return *crcTable()
}

// Update returns the result of adding the bytes in data to crc. Passing 0
// starts a new checksum, so Update(Update(0, a), b) == Checksum(a ‖ b).
func Update(crc uint32, data []byte) uint32 {
	tab := crcTable()
	c := ^crc
	for _, b := range data {
		c = tab[byte(c)^b] ^ (c >> 8)
	}
	return ^c
}

// Checksum returns the CRC-32 (ISO 3309) of data.
func Checksum(data []byte) uint32 {
	return Update(0, data)
}
