package fixedhex_test

import (
	"fmt"

	"github.com/hsiuhsiu/secp256k1-zkp-go/pkg/zkp/fixedhex"
)

func ExampleDecode() {
	var tweak [32]byte
	n, err := fixedhex.Decode("00ff", tweak[:])
	if err != nil {
		fmt.Println("reject:", err)
		return
	}
	fmt.Println(n, tweak[0], tweak[1])

	_, err = fixedhex.Decode("00112233", tweak[:2])
	fmt.Println(err)
	// Output:
	// 2 0 255
	// fixedhex: invalid hex input
}
