package notification

import (
	"testing"

	"github.com/metertap/hdlc-dlms/pkg/axdr"
	"github.com/metertap/hdlc-dlms/pkg/obis"
)

func TestProjectLeadingVisibleStringBecomesListVersion(t *testing.T) {
	body := axdr.Structure{"Kamstrup_V0001"}
	p := NewProjector()

	elements, err := p.Project(body)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	el, ok := elements["list_version"]
	if !ok || el.Value != "Kamstrup_V0001" || el.ValueType != "visible_string" {
		t.Fatalf("list_version element = %+v", el)
	}
}

func TestProjectReinterpretsClockObisAsDateTime(t *testing.T) {
	clockCode, err := obis.FromString("0.1.1.0.0.255")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	dateTimeBytes := []byte{0x07, 0xe6, 0x01, 0x11, 0x01, 0x0c, 0x2c, 0x28, 0xff, 0x80, 0x00, 0x00}

	raw := clockCode.Bytes()
	body := axdr.Structure{raw[:], dateTimeBytes}
	p := NewProjector()

	elements, err := p.Project(body)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	el, ok := elements["0.1.1.0.0.255"]
	if !ok {
		t.Fatalf("missing clock obis element")
	}
	if el.ValueType != "date_time" {
		t.Fatalf("value_type = %q, want date_time", el.ValueType)
	}
	dt, ok := el.Value.(axdr.DateTime)
	if !ok || dt.Date.Year != 2022 || dt.Date.Day != 17 {
		t.Fatalf("value = %+v, want decoded 2022-01-17", el.Value)
	}
}

func TestProjectKeepsNonObisPaddingWithoutError(t *testing.T) {
	obisCode, err := obis.FromString("1.1.32.7.0.255")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	raw := obisCode.Bytes()
	body := axdr.Structure{raw[:], uint16(225), nil, nil}
	p := NewProjector()

	elements, err := p.Project(body)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if el, ok := elements["1.1.32.7.0.255"]; !ok || el.Value != uint16(225) {
		t.Fatalf("obis element = %+v", el)
	}
	if _, ok := elements["item_2"]; !ok {
		t.Fatalf("expected standalone padding entry item_2")
	}
	if _, ok := elements["item_3"]; !ok {
		t.Fatalf("expected standalone padding entry item_3")
	}
}

func TestProjectCustomClockSetOverridesDefault(t *testing.T) {
	customCode, err := obis.FromString("1.0.0.9.0.255")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	dateTimeBytes := []byte{0x07, 0xe6, 0x01, 0x11, 0x01, 0x0c, 0x2c, 0x28, 0xff, 0x80, 0x00, 0x00}
	raw := customCode.Bytes()
	body := axdr.Structure{raw[:], dateTimeBytes}

	clocks := obis.ClockSet{"1.0.0.9.0.255": true}
	p := NewProjector(WithClockSet(clocks))

	elements, err := p.Project(body)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if elements["1.0.0.9.0.255"].ValueType != "date_time" {
		t.Fatalf("custom clock obis not reinterpreted: %+v", elements["1.0.0.9.0.255"])
	}
}
