package parser

// Parser パーサー用のインターフェース
type Parser interface {
	Marshal(any) ([]byte, error)
	Unmarshal([]byte, any) error
}
