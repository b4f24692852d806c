package stringutil

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	unicodeEncoding "golang.org/x/text/encoding/unicode"
)

var (
	ErrSeemsInvalid = fmt.Errorf("input seems not a valid string of specified charset")
)

// Minimal chardet confidence [0-100] accepted by DecodeAuto.
const CharsetDetectionThreshold = 50

// Key: IANA charset name (case sensitive) used by chardet.
var encodings = map[string]encoding.Encoding{
	"GB-18030":     simplifiedchinese.GB18030,
	"Big5":         traditionalchinese.Big5,
	"EUC-JP":       japanese.EUCJP,
	"ISO-2022-JP":  japanese.ISO2022JP,
	"Shift_JIS":    japanese.ShiftJIS,
	"EUC-KR":       korean.EUCKR,
	"ISO-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"UTF-16BE":     unicodeEncoding.UTF16(unicodeEncoding.BigEndian, unicodeEncoding.IgnoreBOM),
	"UTF-16LE":     unicodeEncoding.UTF16(unicodeEncoding.LittleEndian, unicodeEncoding.IgnoreBOM),
}

func DecodeText(input []byte, charset string, force bool) ([]byte, error) {
	if charset == "UTF-8" {
		if !force && strings.ContainsRune(string(input), '�') {
			return input, ErrSeemsInvalid
		}
		return input, nil
	}
	if enc, ok := encodings[charset]; ok {
		output, err := enc.NewDecoder().Bytes(input)
		if !force && strings.ContainsRune(string(output), '�') { // U+FFFD, unicode REPLACEMENT CHARACTER
			return output, ErrSeemsInvalid
		}
		return output, err
	}
	return nil, fmt.Errorf("unsupported charset %s", charset)
}

// DecodeAuto returns input as UTF-8 text.
// Valid UTF-8 (incl. pure ASCII) input is returned as is;
// otherwise the charset is detected with chardet and the input is decoded from it.
func DecodeAuto(input []byte) ([]byte, string, error) {
	if utf8.Valid(input) {
		return input, "UTF-8", nil
	}
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(input)
	if err != nil {
		return nil, "", fmt.Errorf("can not get text encoding: %w", err)
	}
	if result.Confidence < CharsetDetectionThreshold {
		return nil, result.Charset, fmt.Errorf("can not get text encoding: guess=%s, confidence=%d",
			result.Charset, result.Confidence)
	}
	output, err := DecodeText(input, result.Charset, false)
	if err != nil {
		return nil, result.Charset, err
	}
	return output, result.Charset, nil
}
