package wire

// CmdID is a raw SVGA_3D_CMD_* wire command identifier, as carried in
// the FIFO's SVGA3dCmdHeader.id field (spec §6.1).
type CmdID uint32

// Command ids below follow the real VMSVGA command order recovered from
// the original device sources: ids increase monotonically with protocol
// history, legacy VGPU9 commands first, then the guest-backed-object (GB)
// commands, then the VGPU10/DX command set. A handful of numeric gaps
// (documented inline) correspond to commands the original protocol retired
// and this module never models; they are reserved and must never be
// reused.
const (
	CmdLegacyBase CmdID = 1039 // not a real command; marks the start of the id space

	CmdSurfaceDefine CmdID = 1040
	CmdSurfaceDestroy CmdID = 1041
	CmdSurfaceCopy CmdID = 1042
	CmdSurfaceStretchBlt CmdID = 1043

	// 1044-1051 reserved (retired legacy commands, not modeled here)

	CmdSurfaceDMA CmdID = 1052
	CmdContextDefine CmdID = 1053
	CmdContextDestroy CmdID = 1054
	CmdSetTransform CmdID = 1055
	CmdSetZRange CmdID = 1056
	CmdSetRenderState CmdID = 1057
	CmdSetRenderTarget CmdID = 1058
	CmdSetTextureState CmdID = 1059
	CmdSetMaterial CmdID = 1060
	CmdSetLightData CmdID = 1061
	CmdSetLightEnabled CmdID = 1062
	CmdSetViewport CmdID = 1063
	CmdSetClipPlane CmdID = 1064
	CmdClear CmdID = 1065
	CmdPresent CmdID = 1066
	CmdShaderDefine CmdID = 1067
	CmdShaderDestroy CmdID = 1068
	CmdSetShader CmdID = 1069
	CmdSetShaderConst CmdID = 1070
	CmdDrawPrimitives CmdID = 1071
	CmdSetScissorRect CmdID = 1072
	CmdBeginQuery CmdID = 1073
	CmdEndQuery CmdID = 1074
	CmdWaitForQuery CmdID = 1075
	CmdPresentReadback CmdID = 1076
	CmdBlitSurfaceToScreen CmdID = 1077
	CmdSurfaceDefineV2 CmdID = 1078
	CmdGenerateMipmaps CmdID = 1079

	// 1080-1083 continue the legacy block; DEAD4-DEAD11 above them are
	// retired ids with no successor and are intentionally absent

	CmdActivateSurface CmdID = 1080
	CmdDeactivateSurface CmdID = 1081
	CmdScreenDMA CmdID = 1082
	CmdVbDxClearRendertargetViewRegion CmdID = 1083
	CmdSetOtableBase CmdID = 1084
	CmdReadbackOtable CmdID = 1085
	CmdDefineGbMob CmdID = 1086
	CmdDestroyGbMob CmdID = 1087
	CmdUpdateGbMobMapping CmdID = 1088

	// 1089-1096 reserved, aligning CmdDefineGBSurface with the real protocol's base

	CmdDefineGbSurface CmdID = 1097
	CmdDestroyGbSurface CmdID = 1098
	CmdBindGbSurface CmdID = 1099
	CmdCondBindGbSurface CmdID = 1100
	CmdUpdateGbImage CmdID = 1101
	CmdUpdateGbSurface CmdID = 1102
	CmdReadbackGbImage CmdID = 1103
	CmdReadbackGbSurface CmdID = 1104
	CmdInvalidateGbImage CmdID = 1105
	CmdInvalidateGbSurface CmdID = 1106
	CmdDefineGbContext CmdID = 1107
	CmdDestroyGbContext CmdID = 1108
	CmdBindGbContext CmdID = 1109
	CmdReadbackGbContext CmdID = 1110
	CmdInvalidateGbContext CmdID = 1111
	CmdDefineGbShader CmdID = 1112
	CmdDestroyGbShader CmdID = 1113
	CmdBindGbShader CmdID = 1114
	CmdSetOtableBase64 CmdID = 1115
	CmdBeginGbQuery CmdID = 1116
	CmdEndGbQuery CmdID = 1117
	CmdWaitForGbQuery CmdID = 1118
	CmdNop CmdID = 1119
	CmdEnableGart CmdID = 1120
	CmdDisableGart CmdID = 1121
	CmdMapMobIntoGart CmdID = 1122
	CmdUnmapGartRange CmdID = 1123
	CmdDefineGbScreentarget CmdID = 1124
	CmdDestroyGbScreentarget CmdID = 1125
	CmdBindGbScreentarget CmdID = 1126
	CmdUpdateGbScreentarget CmdID = 1127
	CmdReadbackGbImagePartial CmdID = 1128
	CmdInvalidateGbImagePartial CmdID = 1129
	CmdSetGbShaderconstsInline CmdID = 1130
	CmdGbScreenDMA CmdID = 1131
	CmdBindGbSurfaceWithPitch CmdID = 1132
	CmdGbMobFence CmdID = 1133
	CmdDefineGbSurfaceV2 CmdID = 1134
	CmdDefineGbMob64 CmdID = 1135
	CmdRedefineGbMob64 CmdID = 1136
	CmdNopError CmdID = 1137
	CmdSetVertexStreams CmdID = 1138
	CmdSetVertexDecls CmdID = 1139
	CmdSetVertexDivisors CmdID = 1140
	CmdDraw CmdID = 1141
	CmdDrawIndexed CmdID = 1142
	CmdDxDefineContext CmdID = 1143
	CmdDxDestroyContext CmdID = 1144
	CmdDxBindContext CmdID = 1145
	CmdDxReadbackContext CmdID = 1146
	CmdDxInvalidateContext CmdID = 1147
	CmdDxSetSingleConstantBuffer CmdID = 1148
	CmdDxSetShaderResources CmdID = 1149
	CmdDxSetShader CmdID = 1150
	CmdDxSetSamplers CmdID = 1151
	CmdDxDraw CmdID = 1152
	CmdDxDrawIndexed CmdID = 1153
	CmdDxDrawInstanced CmdID = 1154
	CmdDxDrawIndexedInstanced CmdID = 1155
	CmdDxDrawAuto CmdID = 1156
	CmdDxSetInputLayout CmdID = 1157
	CmdDxSetVertexBuffers CmdID = 1158
	CmdDxSetIndexBuffer CmdID = 1159
	CmdDxSetTopology CmdID = 1160
	CmdDxSetRendertargets CmdID = 1161
	CmdDxSetBlendState CmdID = 1162
	CmdDxSetDepthstencilState CmdID = 1163
	CmdDxSetRasterizerState CmdID = 1164
	CmdDxDefineQuery CmdID = 1165
	CmdDxDestroyQuery CmdID = 1166
	CmdDxBindQuery CmdID = 1167
	CmdDxSetQueryOffset CmdID = 1168
	CmdDxBeginQuery CmdID = 1169
	CmdDxEndQuery CmdID = 1170
	CmdDxReadbackQuery CmdID = 1171
	CmdDxSetPredication CmdID = 1172
	CmdDxSetSotargets CmdID = 1173
	CmdDxSetViewports CmdID = 1174
	CmdDxSetScissorrects CmdID = 1175
	CmdDxClearRendertargetView CmdID = 1176
	CmdDxClearDepthstencilView CmdID = 1177
	CmdDxPredCopyRegion CmdID = 1178
	CmdDxPredCopy CmdID = 1179
	CmdDxPresentBlt CmdID = 1180
	CmdDxGenMips CmdID = 1181
	CmdDxUpdateSubresource CmdID = 1182
	CmdDxReadbackSubresource CmdID = 1183
	CmdDxInvalidateSubresource CmdID = 1184
	CmdDxDefineShaderresourceView CmdID = 1185
	CmdDxDestroyShaderresourceView CmdID = 1186
	CmdDxDefineRendertargetView CmdID = 1187
	CmdDxDestroyRendertargetView CmdID = 1188
	CmdDxDefineDepthstencilView CmdID = 1189
	CmdDxDestroyDepthstencilView CmdID = 1190
	CmdDxDefineElementlayout CmdID = 1191
	CmdDxDestroyElementlayout CmdID = 1192
	CmdDxDefineBlendState CmdID = 1193
	CmdDxDestroyBlendState CmdID = 1194
	CmdDxDefineDepthstencilState CmdID = 1195
	CmdDxDestroyDepthstencilState CmdID = 1196
	CmdDxDefineRasterizerState CmdID = 1197
	CmdDxDestroyRasterizerState CmdID = 1198
	CmdDxDefineSamplerState CmdID = 1199
	CmdDxDestroySamplerState CmdID = 1200
	CmdDxDefineShader CmdID = 1201
	CmdDxDestroyShader CmdID = 1202
	CmdDxBindShader CmdID = 1203
	CmdDxDefineStreamoutput CmdID = 1204
	CmdDxDestroyStreamoutput CmdID = 1205
	CmdDxSetStreamoutput CmdID = 1206
	CmdDxSetCotable CmdID = 1207
	CmdDxReadbackCotable CmdID = 1208
	CmdDxBufferCopy CmdID = 1209
	CmdDxTransferFromBuffer CmdID = 1210
	CmdDxSurfaceCopyAndReadback CmdID = 1211
	CmdDxMoveQuery CmdID = 1212
	CmdDxBindAllQuery CmdID = 1213
	CmdDxReadbackAllQuery CmdID = 1214
	CmdDxPredTransferFromBuffer CmdID = 1215
	CmdDxMobFence64 CmdID = 1216
	CmdDxBindAllShader CmdID = 1217
	CmdDxHint CmdID = 1218
	CmdDxBufferUpdate CmdID = 1219
	CmdDxSetVsConstantBufferOffset CmdID = 1220
	CmdDxSetPsConstantBufferOffset CmdID = 1221
	CmdDxSetGsConstantBufferOffset CmdID = 1222
	CmdDxSetHsConstantBufferOffset CmdID = 1223
	CmdDxSetDsConstantBufferOffset CmdID = 1224
	CmdDxSetCsConstantBufferOffset CmdID = 1225
	CmdDxCondBindAllShader CmdID = 1226
	CmdScreenCopy CmdID = 1227
	CmdGrowOtable CmdID = 1236
	CmdDxGrowCotable CmdID = 1237
	CmdIntraSurfaceCopy CmdID = 1238
	CmdDefineGbSurfaceV3 CmdID = 1239
	CmdDxResolveCopy CmdID = 1240
	CmdDxPredResolveCopy CmdID = 1241
	CmdDxPredConvertRegion CmdID = 1242
	CmdDxPredConvert CmdID = 1243
	CmdWholeSurfaceCopy CmdID = 1244
	CmdDxDefineUaView CmdID = 1245
	CmdDxDestroyUaView CmdID = 1246
	CmdDxClearUaViewUint CmdID = 1247
	CmdDxClearUaViewFloat CmdID = 1248
	CmdDxCopyStructureCount CmdID = 1249
	CmdDxSetUaViews CmdID = 1250
	CmdDxDrawIndexedInstancedIndirect CmdID = 1251
	CmdDxDrawInstancedIndirect CmdID = 1252
	CmdDxDispatch CmdID = 1253
	CmdDxDispatchIndirect CmdID = 1254
	CmdWriteZeroSurface CmdID = 1255
	CmdHintZeroSurface CmdID = 1256
	CmdDxTransferToBuffer CmdID = 1257
	CmdDxSetStructureCount CmdID = 1258
	CmdLogicopsBitblt CmdID = 1259
	CmdLogicopsTransblt CmdID = 1260
	CmdLogicopsStretchblt CmdID = 1261
	CmdLogicopsColorfill CmdID = 1262
	CmdLogicopsAlphablend CmdID = 1263
	CmdLogicopsCleartypeblend CmdID = 1264
	CmdDefineGbSurfaceV4 CmdID = 1267
	CmdDxSetCsUaViews CmdID = 1268
	CmdDxSetMinLod CmdID = 1269
	CmdDxDefineDepthstencilViewV2 CmdID = 1272
	CmdDxDefineStreamoutputWithMob CmdID = 1273
	CmdDxSetShaderIface CmdID = 1274
	CmdDxBindStreamoutput CmdID = 1275
	CmdSurfaceStretchbltNonMsToMs CmdID = 1276
	CmdDxBindShaderIface CmdID = 1277
	CmdMax CmdID = 1278
	CmdFutureMax CmdID = 1279
)

