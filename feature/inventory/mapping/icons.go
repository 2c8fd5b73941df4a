package mapping

// builtinIcons is the portrait table shipped with the viewer. It always wins over
// manifest-derived entries. The protagonist has no numeric id in exports and is keyed by slug.
var builtinIcons = map[string]string{
	"1102":  "T_IconRoleHead256_7_UI1102.webp",  // Sanhua
	"1103":  "T_IconRoleHead256_6_UI1103.webp",  // Baizhi
	"1104":  "T_IconRoleHead256_14_UI1104.webp", // Lingyang
	"1105":  "T_IconRoleHead256_27_UI1105.webp", // Zhezhi
	"1106":  "T_IconRoleHead256_31_UI1106.webp", // Youhu
	"1107":  "T_IconRoleHead256_32_UI1107.webp", // Carlotta
	"1202":  "T_IconRoleHead256_2_UI1202.webp",  // Chixia
	"1203":  "T_IconRoleHead256_8_UI1203.webp",  // Encore
	"1204":  "T_IconRoleHead256_13_UI1204.webp", // Mortefi
	"1205":  "T_IconRoleHead256_26_UI1205.webp", // Changli
	"1206":  "T_IconRoleHead256_44_UI1206.webp", // Brant
	"1207":  "T_IconRoleHead256_46_UI1207.webp", // Lupa
	"1301":  "T_IconRoleHead256_18_UI1301.webp", // Calcharo
	"1302":  "T_IconRoleHead256_17_UI1302.webp", // Yinlin
	"1303":  "T_IconRoleHead256_15_UI1303.webp", // Yuanwu
	"1304":  "T_IconRoleHead256_24_UI1304.webp", // Jinshi
	"1305":  "T_IconRoleHead256_25_UI1305.webp", // Xiangliyao
	"1402":  "T_IconRoleHead256_1_UI1402.webp",  // Yangyang
	"1403":  "T_IconRoleHead256_12_UI1403.webp", // Aalto
	"1404":  "T_IconRoleHead256_11_UI1404.webp", // Jiyan
	"1405":  "T_IconRoleHead256_23_UI1405.webp", // Jianxin
	"1407":  "T_IconRoleHead256_37_UI1407.webp", // Ciaccona
	"1409":  "T_IconRoleHead256_40_UI1409.webp", // Cartethyia
	"1503":  "T_IconRoleHead256_3_UI1503.webp",  // Verina
	"1504":  "T_IconRoleHead256_30_UI1504.webp", // Lumi
	"1505":  "T_IconRoleHead256_28_UI1505.webp", // Shorekeeper
	"1506":  "T_IconRoleHead256_45_UI1506.webp", // Phoebe
	"1507":  "T_IconRoleHead256_38_UI1507.webp", // Zani
	"1602":  "T_IconRoleHead256_10_UI1602.webp", // Danjin
	"1603":  "T_IconRoleHead256_29_UI1603.webp", // Camellya
	"1606":  "T_IconRoleHead256_33_UI1606.webp", // Roccia
	"1607":  "T_IconRoleHead256_34_UI1607.webp", // Cantarella
	"1608":  "T_IconRoleHead256_41_UI1608.webp", // Phrolova
	"zaira": "T_IconRoleHead256_5_UIF1502.webp", // Zaira (protagonist)
}

func applyBuiltinIcons(dst map[string]string) {
	for k, v := range builtinIcons {
		dst[k] = v
	}
}
