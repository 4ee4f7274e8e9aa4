package parser

import "encoding/json"

// JSONParser はjson用のパーサー
// Indent が空でなければ整形して出力する
type JSONParser struct {
	Indent string
}

// Marshal は構造体をbyteに変換する
func (p *JSONParser) Marshal(i any) ([]byte, error) {
	if p.Indent != "" {
		return json.MarshalIndent(i, "", p.Indent)
	}
	return json.Marshal(i)
}

// Unmarshal は構造体に変換する
func (p *JSONParser) Unmarshal(b []byte, i any) error {
	return json.Unmarshal(b, i)
}
