package filters

import "fmt"

// RunLengthDecode decodes PackBits-style run-length data. A length byte
// below 128 copies the next length+1 bytes; above 128 repeats the next byte
// 257-length times; 128 ends the data.
func RunLengthDecode(data []byte) ([]byte, error) {
	var out []byte
	for i := 0; i < len(data); {
		n := int(data[i])
		i++
		switch {
		case n == 128:
			return out, nil
		case n < 128:
			if i+n+1 > len(data) {
				return nil, fmt.Errorf("literal run of %d bytes overruns data", n+1)
			}
			out = append(out, data[i:i+n+1]...)
			i += n + 1
		default:
			if i >= len(data) {
				return nil, fmt.Errorf("repeat run missing its byte")
			}
			for k := 0; k < 257-n; k++ {
				out = append(out, data[i])
			}
			i++
		}
	}
	return out, nil
}
