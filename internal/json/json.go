package json

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/starudream/staticstr/internal/conv"
)

var json = sonic.Config{
	EscapeHTML:       false,
	SortMapKeys:      false,
	CompactMarshaler: true,
	CopyString:       true,
	ValidateString:   true,
}.Froze()

var (
	Marshal         = json.Marshal
	MarshalToString = json.MarshalToString

	Unmarshal = json.Unmarshal
)

func MustMarshalToString(v any) string {
	s, err := MarshalToString(v)
	if err != nil {
		panic(err)
	}
	return s
}

func UnmarshalTo[T any](v any) (t T, err error) {
	switch x := v.(type) {
	case string:
		err = Unmarshal(conv.StringToBytes(x), &t)
	case []byte:
		err = Unmarshal(x, &t)
	case io.Reader:
		err = json.NewDecoder(x).Decode(&t)
	default:
		panic(fmt.Errorf("json.UnmarshalTo: invalid type: %T", v))
	}
	return
}
