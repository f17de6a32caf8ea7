package zvarint_test

import (
	"errors"
	"fmt"

	"github.com/arloliu/zvarint"
	"github.com/arloliu/zvarint/errs"
)

func ExamplePutZLong() {
	var buf [zvarint.MaxZLongLen]byte
	n := zvarint.PutZLong(buf[:], -300)
	fmt.Printf("% x\n", buf[:n])

	c := zvarint.NewCursor(buf[:n])
	v, err := zvarint.ReadZLong(c)
	fmt.Println(v, err, c.Remaining())
	// Output:
	// d7 04
	// -300 <nil> 0
}

func ExampleReadZInt_overflow() {
	data := zvarint.AppendZLong(nil, 1<<40)
	c := zvarint.NewCursor(data)

	_, err := zvarint.ReadZInt(c)
	fmt.Println(errors.Is(err, errs.ErrVarintOverflow), c.Remaining())
	// Output:
	// true 6
}

func ExampleEncodeInt64s() {
	data, err := zvarint.EncodeInt64s([]int64{100, -100, 0})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(data), "bytes")

	values, err := zvarint.DecodeInt64s(data)
	fmt.Println(values, err)
	// Output:
	// 29 bytes
	// [100 -100 0] <nil>
}
