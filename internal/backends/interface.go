package backends

// Backend recebe o programa brainfuck já compilado
type Backend interface {
	Compile(programa string) error
	GetName() string
}
