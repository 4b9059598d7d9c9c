package huffile_test

import (
	"fmt"

	"github.com/seif/huffile"
)

func ExampleCompress() {
	packed, err := huffile.Compress([]byte("abracadabra"))
	if err != nil {
		panic(err)
	}
	out, err := huffile.Decompress(packed)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
	// Output:
	// abracadabra
}

func ExampleEncode() {
	c, err := huffile.Encode([]byte{0x41, 0x41, 0x42})
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Freqs[0x41], c.Freqs[0x42], c.Padding, len(c.Payload))
	// Output:
	// 2 1 5 1
}
