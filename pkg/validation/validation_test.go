package validation

import "testing"

func TestValidateChoiceMove(t *testing.T) {
	v := NewInputValidator(1024)

	if err := v.ValidateChoice("move", ChoiceParams{MoveIndex: 0, TargetSlot: 0}, 10); err != nil {
		t.Errorf("valid move choice rejected: %v", err)
	}
	if err := v.ValidateChoice("move", ChoiceParams{MoveIndex: 4, TargetSlot: 0}, 10); err == nil {
		t.Error("moveIndex 4 (out of [0,4) range) should be rejected")
	}
	if err := v.ValidateChoice("move", ChoiceParams{MoveIndex: -1, TargetSlot: 0}, 10); err == nil {
		t.Error("negative moveIndex should be rejected")
	}
}

func TestValidateChoiceSwitch(t *testing.T) {
	v := NewInputValidator(1024)

	if err := v.ValidateChoice("switch", ChoiceParams{SwitchTo: 2}, 10); err != nil {
		t.Errorf("valid switch choice rejected: %v", err)
	}
	if err := v.ValidateChoice("switch", ChoiceParams{SwitchTo: -1}, 10); err == nil {
		t.Error("negative switchTo should be rejected")
	}
}

func TestValidateChoiceItem(t *testing.T) {
	v := NewInputValidator(1024)

	if err := v.ValidateChoice("item", ChoiceParams{ItemID: "potion", TargetSlot: 0}, 10); err != nil {
		t.Errorf("valid item choice rejected: %v", err)
	}
	if err := v.ValidateChoice("item", ChoiceParams{ItemID: "", TargetSlot: 0}, 10); err == nil {
		t.Error("empty itemId should be rejected")
	}
	if err := v.ValidateChoice("item", ChoiceParams{ItemID: "Not Valid!", TargetSlot: 0}, 10); err == nil {
		t.Error("itemId with invalid characters should be rejected")
	}
}

func TestValidateChoiceNoParamKinds(t *testing.T) {
	v := NewInputValidator(1024)
	for _, kind := range []string{"escape", "forfeit", "pass"} {
		if err := v.ValidateChoice(kind, ChoiceParams{}, 10); err != nil {
			t.Errorf("%s choice with empty params rejected: %v", kind, err)
		}
	}
}

func TestValidateChoiceUnknownKind(t *testing.T) {
	v := NewInputValidator(1024)
	if err := v.ValidateChoice("teleport", ChoiceParams{}, 10); err == nil {
		t.Error("unknown choice kind should be rejected")
	}
}

func TestValidateChoiceRequestSizeLimit(t *testing.T) {
	v := NewInputValidator(100)
	if err := v.ValidateChoice("pass", ChoiceParams{}, 101); err == nil {
		t.Error("request exceeding size limit should be rejected")
	}
}
