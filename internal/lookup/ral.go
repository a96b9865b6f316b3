package lookup

// ralCodes maps RAL Classic codes to sRGB approximations. Keys carry the
// "ral " prefix so the matched text can be looked up directly.
var ralCodes = map[string]string{
	"ral 1000": "#cdba88", "ral 1001": "#d0b084", "ral 1002": "#d2aa6d", "ral 1003": "#f9a800",
	"ral 1004": "#e49e00", "ral 1005": "#cb8e00", "ral 1006": "#e29000", "ral 1007": "#e88c00",
	"ral 1011": "#af804f", "ral 1012": "#ddaf27", "ral 1013": "#e3d9c6", "ral 1014": "#ddc49a",
	"ral 1015": "#e6d2b5", "ral 1016": "#f1dd38", "ral 1017": "#f6a950", "ral 1018": "#faca30",
	"ral 1019": "#a48f7a", "ral 1020": "#a08f65", "ral 1021": "#f6b600", "ral 1023": "#f7b500",
	"ral 1024": "#ba8f4c", "ral 1026": "#ffff00", "ral 1027": "#a77f0e", "ral 1028": "#ff9b00",
	"ral 1032": "#e2a300", "ral 1033": "#f99a1c", "ral 1034": "#eb9c52", "ral 1035": "#908370",
	"ral 1036": "#80643f", "ral 1037": "#f09200",
	"ral 2000": "#da6e00", "ral 2001": "#ba481b", "ral 2002": "#bf3922", "ral 2003": "#f67828",
	"ral 2004": "#e25303", "ral 2005": "#ff4d06", "ral 2007": "#ffb200", "ral 2008": "#ed6b21",
	"ral 2009": "#de5307", "ral 2010": "#d05d28", "ral 2011": "#e26e0e", "ral 2012": "#d5654d",
	"ral 2013": "#923e25",
	"ral 3000": "#a72920", "ral 3001": "#9b2423", "ral 3002": "#9b2321", "ral 3003": "#861a22",
	"ral 3004": "#6b1c23", "ral 3005": "#59191f", "ral 3007": "#3e2022", "ral 3009": "#6d342d",
	"ral 3011": "#792423", "ral 3012": "#c6846d", "ral 3013": "#972e25", "ral 3014": "#cb7375",
	"ral 3015": "#d8a0a6", "ral 3016": "#a63d2f", "ral 3017": "#cb555d", "ral 3018": "#c73f4a",
	"ral 3020": "#bb1e10", "ral 3022": "#cf6955", "ral 3024": "#ff2d21", "ral 3026": "#ff2a1b",
	"ral 3027": "#ab273c", "ral 3028": "#cc2c24", "ral 3031": "#a63437", "ral 3032": "#701d23",
	"ral 3033": "#a53a2d",
	"ral 4001": "#816183", "ral 4002": "#8d3c4b", "ral 4003": "#c4618c", "ral 4004": "#651e38",
	"ral 4005": "#76689a", "ral 4006": "#903373", "ral 4007": "#47243c", "ral 4008": "#844c82",
	"ral 4009": "#9d8692", "ral 4010": "#bc4077", "ral 4011": "#6e6387", "ral 4012": "#6b6b7f",
	"ral 5000": "#314f6f", "ral 5001": "#0f4c64", "ral 5002": "#00387b", "ral 5003": "#1f3855",
	"ral 5004": "#191e28", "ral 5005": "#005387", "ral 5007": "#376b8c", "ral 5008": "#2b3a44",
	"ral 5009": "#215f78", "ral 5010": "#004f7c", "ral 5011": "#1a2b3c", "ral 5012": "#0089b6",
	"ral 5013": "#193153", "ral 5014": "#637d96", "ral 5015": "#007cb0", "ral 5017": "#005b8c",
	"ral 5018": "#048b8c", "ral 5019": "#005e83", "ral 5020": "#00414b", "ral 5021": "#007577",
	"ral 5022": "#222d5a", "ral 5023": "#42698c", "ral 5024": "#6093ac", "ral 5025": "#21697c",
	"ral 5026": "#0f3052",
	"ral 6000": "#3c7460", "ral 6001": "#366735", "ral 6002": "#325928", "ral 6003": "#50533c",
	"ral 6004": "#024442", "ral 6005": "#114232", "ral 6006": "#3c392e", "ral 6007": "#2c3222",
	"ral 6008": "#37342a", "ral 6009": "#27352a", "ral 6010": "#4d6f39", "ral 6011": "#6c7c59",
	"ral 6012": "#303d3a", "ral 6013": "#7d765a", "ral 6014": "#474135", "ral 6015": "#3d3d36",
	"ral 6016": "#00694c", "ral 6017": "#587f40", "ral 6018": "#61993b", "ral 6019": "#b9ceac",
	"ral 6020": "#37422f", "ral 6021": "#8a9977", "ral 6022": "#3a3327", "ral 6024": "#008351",
	"ral 6025": "#5e6e3b", "ral 6026": "#005f4e", "ral 6027": "#7ebab5", "ral 6028": "#315442",
	"ral 6029": "#006f3d", "ral 6032": "#237f52", "ral 6033": "#46877f", "ral 6034": "#7aacac",
	"ral 6035": "#194d25", "ral 6036": "#04574b", "ral 6037": "#008b29", "ral 6038": "#00b51a",
	"ral 7000": "#7a888e", "ral 7001": "#8c969d", "ral 7002": "#817863", "ral 7003": "#7a7669",
	"ral 7004": "#9b9b9b", "ral 7005": "#6c6e6b", "ral 7006": "#766a5e", "ral 7008": "#745e3d",
	"ral 7009": "#5d6058", "ral 7010": "#585c56", "ral 7011": "#52595d", "ral 7012": "#575d5e",
	"ral 7013": "#575044", "ral 7015": "#4f5358", "ral 7016": "#383e42", "ral 7021": "#2f3234",
	"ral 7022": "#4c4a44", "ral 7023": "#808076", "ral 7024": "#45494e", "ral 7026": "#374345",
	"ral 7030": "#928e85", "ral 7031": "#5b686d", "ral 7032": "#b5b0a1", "ral 7033": "#7f8274",
	"ral 7034": "#92886f", "ral 7035": "#c5c7c4", "ral 7036": "#979392", "ral 7037": "#7a7b7a",
	"ral 7038": "#b0b0a9", "ral 7039": "#6b665e", "ral 7040": "#989ea1", "ral 7042": "#8e9291",
	"ral 7043": "#4f5250", "ral 7044": "#b7b3a8", "ral 7045": "#8d9295", "ral 7046": "#7e868a",
	"ral 7047": "#c8c8c7", "ral 7048": "#817b73",
	"ral 8000": "#89693e", "ral 8001": "#9d622b", "ral 8002": "#794d3e", "ral 8003": "#7e4b26",
	"ral 8004": "#8d4931", "ral 8007": "#70452a", "ral 8008": "#724a25", "ral 8011": "#5a3826",
	"ral 8012": "#66332b", "ral 8014": "#4a3526", "ral 8015": "#5e2f26", "ral 8016": "#4c2b20",
	"ral 8017": "#442f29", "ral 8019": "#3d3635", "ral 8022": "#1a1718", "ral 8023": "#a45729",
	"ral 8024": "#795038", "ral 8025": "#755847", "ral 8028": "#513a2a", "ral 8029": "#7f4031",
	"ral 9001": "#e9e0d2", "ral 9002": "#d7d5cb", "ral 9003": "#ecece7", "ral 9004": "#2b2b2c",
	"ral 9005": "#0e0e10", "ral 9006": "#a1a1a0", "ral 9007": "#878581", "ral 9010": "#f1ece1",
	"ral 9011": "#27292b", "ral 9016": "#f1f0ea", "ral 9017": "#2a292a", "ral 9018": "#c8cbc4",
	"ral 9022": "#858583", "ral 9023": "#797b7a",
}
